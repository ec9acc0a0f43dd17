package utils

import (
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"

	"github.com/rkritzar39/calebsportfolio-sub000/config"
)

// Cloudinary initializes a Cloudinary client from the configured URL.
func Cloudinary() (*cloudinary.Cloudinary, error) {
	if config.AppConfig.CloudinaryURL == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}
	cld, err := cloudinary.NewFromURL(config.AppConfig.CloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("utils.Cloudinary: failed to initialize Cloudinary: %w", err)
	}
	return cld, nil
}
