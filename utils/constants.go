package utils

// Specialties is the fixed set of professional specialties.
var Specialties = []string{
	"Nail Artistry",
	"Hair Colorist & Stylist",
	"Lash & Brow Expert",
	"Makeup Artist",
	"Braid Specialist",
	"Skincare & Facials",
	"Waxing Services",
	"Massage Therapy",
}

// ServiceCategories groups services for the onboarding menu.
var ServiceCategories = []string{
	"Nails", "Hair", "Lashes & Brows", "Makeup", "Skincare", "Waxing", "Massage",
}

// DublinLocations is the supported service-area list.
var DublinLocations = []string{
	"Dublin 1 (D01)",
	"Dublin 2 (D02)",
	"Dublin 3 (D03)",
	"Dublin 4 (D04)",
	"Dublin 5 (D05)",
	"Dublin 6 (D06)",
	"Dublin 6W (D6W)",
	"Dublin 7 (D07)",
	"Dublin 8 (D08)",
	"Dublin 9 (D09)",
	"Dublin 10 (D10)",
	"Dublin 11 (D11)",
	"Dublin 12 (D12)",
	"Dublin 13 (D13)",
	"Dublin 14 (D14)",
	"Dublin 15 (D15)",
	"Dublin 16 (D16)",
	"Dublin 17 (D17)",
	"Dublin 18 (D18)",
	"Dublin 20 (D20)",
	"Dublin 22 (D22)",
	"Dublin 24 (D24)",
	"County Dublin (Co. Dublin)",
}

// IsValidSpecialty reports whether s is one of the fixed specialties.
func IsValidSpecialty(s string) bool {
	for _, v := range Specialties {
		if v == s {
			return true
		}
	}
	return false
}

// IsValidLocation reports whether loc is a supported location.
func IsValidLocation(loc string) bool {
	for _, v := range DublinLocations {
		if v == loc {
			return true
		}
	}
	return false
}
