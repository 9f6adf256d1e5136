package models_test

import (
	"testing"
	"time"

	"github.com/realjeremy04/Skincare-Mobile-BE/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountDefaultsToCustomer(t *testing.T) {
	database := openTestDB(t, &models.Account{})

	account := models.Account{Username: "nguyen", Password: "hash", Email: "nguyen@test.local"}
	require.NoError(t, database.Create(&account).Error)
	assert.Equal(t, models.RoleCustomer, account.Role)
	assert.True(t, account.IsActive)
}

func TestAccountRejectsUnknownRole(t *testing.T) {
	database := openTestDB(t, &models.Account{})

	account := models.Account{Username: "eve", Password: "hash", Email: "eve@test.local", Role: "SuperAdmin"}
	assert.Error(t, database.Create(&account).Error)
}

func TestAccountUniqueConstraints(t *testing.T) {
	database := openTestDB(t, &models.Account{})

	first := models.Account{Username: "minh", Password: "hash", Email: "minh@test.local"}
	require.NoError(t, database.Create(&first).Error)

	sameEmail := models.Account{Username: "minh2", Password: "hash", Email: "minh@test.local"}
	assert.Error(t, database.Create(&sameEmail).Error)

	sameUsername := models.Account{Username: "minh", Password: "hash", Email: "minh2@test.local"}
	assert.Error(t, database.Create(&sameUsername).Error)
}

func TestCertificationListRoundTrip(t *testing.T) {
	database := openTestDB(t, &models.Account{}, &models.Service{}, &models.Therapist{})

	account := models.Account{Username: "linh", Password: "hash", Email: "linh@test.local", Role: models.RoleTherapist}
	require.NoError(t, database.Create(&account).Error)

	therapist := models.Therapist{
		AccountID: account.ID,
		Certifications: models.CertificationList{
			{Name: "Laser Safety", IssuedBy: "ASLMS", IssuedDate: time.Date(2021, 4, 1, 0, 0, 0, 0, time.UTC)},
			{Name: "Chemical Peel Level 2", IssuedBy: "CIBTAC"},
		},
		Experience: 3,
	}
	require.NoError(t, database.Create(&therapist).Error)

	var loaded models.Therapist
	require.NoError(t, database.First(&loaded, therapist.ID).Error)
	require.Len(t, loaded.Certifications, 2)
	assert.Equal(t, "Laser Safety", loaded.Certifications[0].Name)
	assert.Equal(t, "CIBTAC", loaded.Certifications[1].IssuedBy)
}

func TestAnswerListRoundTrip(t *testing.T) {
	database := openTestDB(t, &models.Question{})

	question := models.Question{
		Content: "How does your skin feel by midday?",
		Answers: models.AnswerList{
			{Content: "Tight and dry", Point: 1},
			{Content: "Comfortable", Point: 2},
			{Content: "Shiny all over", Point: 3},
		},
	}
	require.NoError(t, database.Create(&question).Error)

	var loaded models.Question
	require.NoError(t, database.First(&loaded, question.ID).Error)
	require.Len(t, loaded.Answers, 3)
	assert.Equal(t, "Shiny all over", loaded.Answers[2].Content)
	assert.Equal(t, 3, loaded.Answers[2].Point)
}

func TestFeedbackClampsRating(t *testing.T) {
	database := openTestDB(t, &models.Feedback{})

	low := models.Feedback{AppointmentID: 1, AccountID: 1, ServiceID: 1, TherapistID: 1, Rating: -2}
	require.NoError(t, database.Create(&low).Error)
	assert.Equal(t, 1.0, low.Rating)

	high := models.Feedback{AppointmentID: 2, AccountID: 1, ServiceID: 1, TherapistID: 1, Rating: 9}
	require.NoError(t, database.Create(&high).Error)
	assert.Equal(t, 5.0, high.Rating)
}
