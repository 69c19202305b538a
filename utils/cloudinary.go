package utils

import (
	"marketly/config"
	"marketly/services/storage"
)

// Cloudinary initializes the Cloudinary-backed image store from AppConfig.
// It returns nil without error when no credentials are configured.
func Cloudinary() (storage.ImageStore, error) {
	if !config.AppConfig.CloudinaryEnabled() {
		return nil, nil
	}
	store, err := storage.NewCloudinaryImageStore(
		config.AppConfig.CloudinaryCloudName,
		config.AppConfig.CloudinaryAPIKey,
		config.AppConfig.CloudinaryAPISecret,
	)
	if err != nil {
		return nil, err
	}
	return store, nil
}
