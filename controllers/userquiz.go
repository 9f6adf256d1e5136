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

// SubmitQuiz scores a self-assessment submission: the answer points are
// summed, the matching scoreband resolved by range and the result persisted.
func SubmitQuiz(c *fiber.Ctx) error {
	payload := c.Locals(validators.PayloadKey).(*validators.SubmitQuizPayload)
	accountID := c.Locals("accountID").(uint)

	total := 0
	for _, answer := range payload.Answers {
		total += answer.Point
	}

	var scoreband models.Scoreband
	if db.DB.Where("min_point <= ? AND max_point >= ?", total, total).
		First(&scoreband).RowsAffected == 0 {
		return utils.NotFound("No scoreband matches this score")
	}

	details, err := json.Marshal(payload.Answers)
	if err != nil {
		return utils.BadRequest("Invalid answers list")
	}

	userQuiz := models.UserQuiz{
		AccountID:   accountID,
		ScorebandID: scoreband.ID,
		TotalPoint:  total,
		Details:     datatypes.JSON(details),
	}

	if err := db.DB.Create(&userQuiz).Error; err != nil {
		return utils.Internal("Failed to save quiz result")
	}

	// Expand the recommended roadmap services for the response.
	db.DB.Preload("Roadmap.Services").First(&scoreband, scoreband.ID)
	userQuiz.Scoreband = scoreband

	return utils.Created(c, userQuiz)
}

func GetAllUserQuizzes(c *fiber.Ctx) error {
	var quizzes []models.UserQuiz
	if err := db.DB.Preload("Account").Preload("Scoreband").Find(&quizzes).Error; err != nil {
		return utils.Internal("Failed to fetch quiz results")
	}
	if len(quizzes) == 0 {
		return utils.NotFound("No quiz results found")
	}
	return utils.SuccessList(c, len(quizzes), quizzes)
}

func GetUserQuiz(c *fiber.Ctx) error {
	id := c.Params("id")
	var quiz models.UserQuiz
	if db.DB.Preload("Scoreband.Roadmap.Services").First(&quiz, id).RowsAffected == 0 {
		return utils.NotFound("Quiz result not found")
	}
	return utils.Success(c, quiz)
}

// GetMyQuizzes lists the authenticated account's quiz history.
func GetMyQuizzes(c *fiber.Ctx) error {
	accountID := c.Locals("accountID").(uint)

	var quizzes []models.UserQuiz
	if err := db.DB.Preload("Scoreband").
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&quizzes).Error; err != nil {
		return utils.Internal("Failed to fetch quiz results")
	}
	if len(quizzes) == 0 {
		return utils.NotFound("No quiz results found")
	}
	return utils.SuccessList(c, len(quizzes), quizzes)
}

func DeleteUserQuiz(c *fiber.Ctx) error {
	id := c.Params("id")
	var quiz models.UserQuiz
	if db.DB.First(&quiz, id).RowsAffected == 0 {
		return utils.NotFound("Quiz result not found")
	}
	if err := db.DB.Delete(&quiz).Error; err != nil {
		return utils.Internal("Failed to delete quiz result")
	}
	return utils.Message(c, "Quiz result deleted successfully")
}
