package middleware

import (
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/pawfecthome/backend/internal/storage"
)

// MaxImageSize caps uploads at 3 MiB.
const MaxImageSize = 3 << 20

const imageRefKey = "image_ref"

var allowedImageExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
}

var allowedImageMimes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
}

// ImageUpload intercepts multipart requests carrying an "image" file field,
// validates it against the allow-list and size cap, and stores it before
// the route handler runs. Requests without a file pass through untouched;
// the handler then falls back to a literal image URL or the stored value.
func ImageUpload(store storage.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
			return c.Next()
		}

		file, err := c.FormFile("image")
		if err != nil {
			// Multipart body with no image field: fields-only submission.
			return c.Next()
		}

		ext := strings.ToLower(filepath.Ext(file.Filename))
		mime := file.Header.Get("Content-Type")
		if !allowedImageExts[ext] || !allowedImageMimes[mime] {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "only jpeg, jpg, png and gif images are allowed"})
		}

		if file.Size > MaxImageSize {
			return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{"error": "image exceeds the 3MB limit"})
		}

		ref, err := store.Store(c.Context(), file)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to store image"})
		}

		c.Locals(imageRefKey, ref)
		return c.Next()
	}
}

// UploadedImageRef returns the storage reference set by ImageUpload, or ""
// when the request carried no file.
func UploadedImageRef(c *fiber.Ctx) string {
	ref, _ := c.Locals(imageRefKey).(string)
	return ref
}
