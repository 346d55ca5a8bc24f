// utils/firebase.go
package utils

import (
	"context"
	"log"

	"beautymatch/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

var FCMClient *messaging.Client

// FirebaseInit initializes the Firebase App and Messaging client.
// Push delivery is optional: without credentials the client stays nil
// and notification pushes are skipped.
func FirebaseInit() {
	credsFile := config.AppConfig.FirebaseCredentialsFile
	if credsFile == "" {
		log.Println("firebase: no credentials file configured, push delivery disabled")
		return
	}

	ctx := context.Background()
	opt := option.WithCredentialsFile(credsFile)

	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		log.Fatalf("firebase: error initializing app: %v", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		log.Fatalf("firebase: error getting Messaging client: %v", err)
	}

	FCMClient = client
}
