package utils

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ImageDir is where uploaded images land; main serves it under /images.
const ImageDir = "./public/images"

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
}

var allowedImageExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
}

// SaveImage validates an uploaded image by extension and declared MIME type,
// stores it under ImageDir with a random name, and returns its public path.
func SaveImage(c *fiber.Ctx, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return "", BadRequest("Only jpeg, jpg and png images are allowed")
	}
	if !allowedImageTypes[file.Header.Get("Content-Type")] {
		return "", BadRequest("Only jpeg, jpg and png images are allowed")
	}

	if err := os.MkdirAll(ImageDir, 0o755); err != nil {
		return "", Internal("Failed to prepare image directory")
	}

	name := fmt.Sprintf("%s%s", uuid.NewString(), ext)
	if err := c.SaveFile(file, filepath.Join(ImageDir, name)); err != nil {
		return "", Internal("Failed to store image")
	}

	return "/images/" + name, nil
}
