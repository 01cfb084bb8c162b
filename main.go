package main

import (
	"log"

	"swiftcart-backend/cache"
	"swiftcart-backend/config"
	"swiftcart-backend/controllers"
	"swiftcart-backend/routes"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	cfg := config.Load()

	client, err := config.ConnectDB(cfg.MongoURI)
	if err != nil {
		log.Fatal(err)
	}
	db := client.Database("swiftcart")

	var cld *cloudinary.Cloudinary
	if cfg.CloudinaryURL != "" {
		cld, err = cloudinary.NewFromURL(cfg.CloudinaryURL)
		if err != nil {
			log.Fatal("Failed to initialize Cloudinary:", err)
		}
	} else {
		log.Println("CLOUDINARY_URL not set, product pictures disabled")
	}

	stripe.Key = cfg.StripeKey

	ctrl := &controllers.Controller{
		DB:              db,
		Cache:           cache.New(),
		Cld:             cld,
		PasetoSecretKey: cfg.PasetoSecretKey,
	}

	r := routes.Setup(ctrl, db, cfg.Env)

	log.Println("Server is running on http://localhost:" + cfg.Port)
	log.Fatal(r.Run(":" + cfg.Port))
}
