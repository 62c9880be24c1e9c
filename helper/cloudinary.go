package helper

import (
	"cafe_manager/config"
	"log"

	"github.com/cloudinary/cloudinary-go/v2"
)

// InitCloudinary builds an SDK client for menu image uploads.
func InitCloudinary() *cloudinary.Cloudinary {
	cld, err := cloudinary.NewFromParams(
		config.Config("CLOUDINARY_CLOUD_NAME"),
		config.Config("CLOUDINARY_API_KEY"),
		config.Config("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		log.Fatalf("cloudinary init failed: %v", err)
	}
	return cld
}
