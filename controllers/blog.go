package controllers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/realjeremy04/Skincare-Mobile-BE/db"
	"github.com/realjeremy04/Skincare-Mobile-BE/models"
	"github.com/realjeremy04/Skincare-Mobile-BE/utils"
	"github.com/realjeremy04/Skincare-Mobile-BE/validators"
	"gorm.io/datatypes"
)

func blogImages(payloads []validators.BlogImagePayload) (datatypes.JSON, error) {
	images := make([]models.BlogImage, 0, len(payloads))
	for _, p := range payloads {
		images = append(images, models.BlogImage{
			Image:            p.Image,
			ImageDescription: p.ImageDescription,
		})
	}
	data, err := json.Marshal(images)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(data), nil
}

func GetAllBlogs(c *fiber.Ctx) error {
	var blogs []models.Blog
	if err := db.DB.Preload("Staff").Find(&blogs).Error; err != nil {
		return utils.Internal("Failed to fetch blogs")
	}
	if len(blogs) == 0 {
		return utils.NotFound("No blogs found")
	}
	return utils.SuccessList(c, len(blogs), blogs)
}

func GetBlog(c *fiber.Ctx) error {
	id := c.Params("id")
	var blog models.Blog
	if db.DB.Preload("Staff").First(&blog, id).RowsAffected == 0 {
		return utils.NotFound("Blog not found")
	}
	return utils.Success(c, blog)
}

// CreateBlog authors a post as the authenticated staff account.
func CreateBlog(c *fiber.Ctx) error {
	payload := c.Locals(validators.PayloadKey).(*validators.CreateBlogPayload)
	staffID := c.Locals("accountID").(uint)

	images, err := blogImages(payload.Images)
	if err != nil {
		return utils.BadRequest("Invalid images list")
	}

	blog := models.Blog{
		StaffID: staffID,
		Title:   payload.Title,
		Content: payload.Content,
		Status:  models.BlogStatus(payload.Status),
		Images:  images,
	}

	if err := db.DB.Create(&blog).Error; err != nil {
		return utils.Internal("Failed to create blog")
	}

	return utils.Created(c, blog)
}

func UpdateBlog(c *fiber.Ctx) error {
	id := c.Params("id")
	payload := c.Locals(validators.PayloadKey).(*validators.UpdateBlogPayload)

	var blog models.Blog
	if db.DB.First(&blog, id).RowsAffected == 0 {
		return utils.NotFound("Blog not found")
	}

	updates := map[string]any{}
	if payload.Title != nil {
		updates["title"] = *payload.Title
	}
	if payload.Content != nil {
		updates["content"] = *payload.Content
	}
	if payload.Status != nil {
		updates["status"] = models.BlogStatus(*payload.Status)
	}
	if payload.Images != nil {
		images, err := blogImages(payload.Images)
		if err != nil {
			return utils.BadRequest("Invalid images list")
		}
		updates["images"] = images
	}

	if err := db.DB.Model(&blog).Updates(updates).Error; err != nil {
		return utils.Internal("Failed to update blog")
	}

	return utils.Success(c, blog)
}

func DeleteBlog(c *fiber.Ctx) error {
	id := c.Params("id")
	var blog models.Blog
	if db.DB.First(&blog, id).RowsAffected == 0 {
		return utils.NotFound("Blog not found")
	}
	if err := db.DB.Delete(&blog).Error; err != nil {
		return utils.Internal("Failed to delete blog")
	}
	return utils.Message(c, "Blog deleted successfully")
}
