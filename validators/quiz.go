package validators

import (
	"github.com/gofiber/fiber/v2"
)

type AnswerPayload struct {
	Content string `json:"content" validate:"required"`
	Point   int    `json:"point" validate:"gte=0"`
}

type CreateQuestionPayload struct {
	Content string          `json:"content" validate:"required"`
	Answers []AnswerPayload `json:"answers" validate:"required,min=1,dive"`
}

type UpdateQuestionPayload struct {
	Content *string         `json:"content"`
	Answers []AnswerPayload `json:"answers" validate:"omitempty,min=1,dive"`
}

type CreateScorebandPayload struct {
	MinPoint        int    `json:"min_point" validate:"gte=0"`
	MaxPoint        int    `json:"max_point" validate:"required,gtefield=MinPoint"`
	TypeOfSkin      string `json:"type_of_skin" validate:"required"`
	SkinExplanation string `json:"skin_explanation"`
	RoadmapID       uint   `json:"roadmap_id"`
}

type UpdateScorebandPayload struct {
	MinPoint        *int    `json:"min_point" validate:"omitempty,gte=0"`
	MaxPoint        *int    `json:"max_point"`
	TypeOfSkin      *string `json:"type_of_skin"`
	SkinExplanation *string `json:"skin_explanation"`
	RoadmapID       *uint   `json:"roadmap_id"`
}

type CreateRoadmapPayload struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	ServiceIDs  []uint `json:"service_ids"`
}

type UpdateRoadmapPayload struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ServiceIDs  *[]uint `json:"service_ids"`
}

type QuizAnswerPayload struct {
	QuestionID uint   `json:"question_id" validate:"required"`
	Answer     string `json:"answer" validate:"required"`
	Point      int    `json:"point" validate:"gte=0"`
}

type SubmitQuizPayload struct {
	Answers []QuizAnswerPayload `json:"answers" validate:"required,min=1,dive"`
}

func CreateQuestion(c *fiber.Ctx) error {
	return body(c, new(CreateQuestionPayload))
}

func UpdateQuestion(c *fiber.Ctx) error {
	return body(c, new(UpdateQuestionPayload))
}

func CreateScoreband(c *fiber.Ctx) error {
	return body(c, new(CreateScorebandPayload))
}

func UpdateScoreband(c *fiber.Ctx) error {
	return body(c, new(UpdateScorebandPayload))
}

func CreateRoadmap(c *fiber.Ctx) error {
	return body(c, new(CreateRoadmapPayload))
}

func UpdateRoadmap(c *fiber.Ctx) error {
	return body(c, new(UpdateRoadmapPayload))
}

func SubmitQuiz(c *fiber.Ctx) error {
	return body(c, new(SubmitQuizPayload))
}
