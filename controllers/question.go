package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/realjeremy04/Skincare-Mobile-BE/db"
	"github.com/realjeremy04/Skincare-Mobile-BE/models"
	"github.com/realjeremy04/Skincare-Mobile-BE/utils"
	"github.com/realjeremy04/Skincare-Mobile-BE/validators"
)

func toAnswers(payloads []validators.AnswerPayload) models.AnswerList {
	answers := make(models.AnswerList, 0, len(payloads))
	for _, p := range payloads {
		answers = append(answers, models.Answer{Content: p.Content, Point: p.Point})
	}
	return answers
}

func GetAllQuestions(c *fiber.Ctx) error {
	var questions []models.Question
	if err := db.DB.Find(&questions).Error; err != nil {
		return utils.Internal("Failed to fetch questions")
	}
	if len(questions) == 0 {
		return utils.NotFound("No questions found")
	}
	return utils.SuccessList(c, len(questions), questions)
}

func GetQuestion(c *fiber.Ctx) error {
	id := c.Params("id")
	var question models.Question
	if db.DB.First(&question, id).RowsAffected == 0 {
		return utils.NotFound("Question not found")
	}
	return utils.Success(c, question)
}

func CreateQuestion(c *fiber.Ctx) error {
	payload := c.Locals(validators.PayloadKey).(*validators.CreateQuestionPayload)

	question := models.Question{
		Content: payload.Content,
		Answers: toAnswers(payload.Answers),
	}

	if err := db.DB.Create(&question).Error; err != nil {
		return utils.Internal("Failed to create question")
	}

	return utils.Created(c, question)
}

func UpdateQuestion(c *fiber.Ctx) error {
	id := c.Params("id")
	payload := c.Locals(validators.PayloadKey).(*validators.UpdateQuestionPayload)

	var question models.Question
	if db.DB.First(&question, id).RowsAffected == 0 {
		return utils.NotFound("Question not found")
	}

	if payload.Content != nil {
		question.Content = *payload.Content
	}
	if payload.Answers != nil {
		question.Answers = toAnswers(payload.Answers)
	}

	if err := db.DB.Save(&question).Error; err != nil {
		return utils.Internal("Failed to update question")
	}

	return utils.Success(c, question)
}

func DeleteQuestion(c *fiber.Ctx) error {
	id := c.Params("id")
	var question models.Question
	if db.DB.First(&question, id).RowsAffected == 0 {
		return utils.NotFound("Question not found")
	}
	if err := db.DB.Delete(&question).Error; err != nil {
		return utils.Internal("Failed to delete question")
	}
	return utils.Message(c, "Question deleted successfully")
}
