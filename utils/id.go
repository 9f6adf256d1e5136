package utils

import (
	"fmt"
	"time"
)

// PublicID builds a unique Cloudinary public ID for an entity's upload.
func PublicID(prefix string, id uint) string {
	return fmt.Sprintf("%s_%d_%d", prefix, id, time.Now().Unix())
}
