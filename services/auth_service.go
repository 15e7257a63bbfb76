package services

import (
	"errors"

	"backend/config"
	"backend/models"
	"backend/utils"
)

type SecurityQA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// RegisterUser creates an account. Security answers are hashed the
// same way passwords are; questions are stored in the clear so they
// can be shown back during recovery.
func RegisterUser(username, email, password string, questions []SecurityQA) error {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Username: username,
		Email:    email,
		Password: hashedPassword,
	}

	hashed := make([]string, len(questions))
	for i, qa := range questions {
		hashed[i], err = utils.HashSecurityAnswer(qa.Answer)
		if err != nil {
			return err
		}
	}
	if len(questions) > 0 {
		user.SecurityQuestion1, user.SecurityAnswer1 = questions[0].Question, hashed[0]
	}
	if len(questions) > 1 {
		user.SecurityQuestion2, user.SecurityAnswer2 = questions[1].Question, hashed[1]
	}
	if len(questions) > 2 {
		user.SecurityQuestion3, user.SecurityAnswer3 = questions[2].Question, hashed[2]
	}

	return config.DB.Create(&user).Error
}

func FindUserByUsername(username string) (*models.User, error) {
	var user models.User
	result := config.DB.Where("username = ? AND disabled = ?", username, false).First(&user)
	if result.Error != nil {
		return nil, errors.New("user not found or disabled")
	}
	return &user, nil
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	result := config.DB.First(&user, "email = ?", email)
	if result.Error != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

// SecurityQuestions returns the stored recovery questions for an
// account, to be answered before a password reset.
func SecurityQuestions(username string) ([]string, error) {
	user, err := FindUserByUsername(username)
	if err != nil {
		return nil, err
	}
	questions := []string{}
	for _, q := range []string{user.SecurityQuestion1, user.SecurityQuestion2, user.SecurityQuestion3} {
		if q != "" {
			questions = append(questions, q)
		}
	}
	if len(questions) == 0 {
		return nil, errors.New("no security questions configured")
	}
	return questions, nil
}

// VerifySecurityAnswers checks every configured question; all answers
// must verify before a reset is allowed.
func VerifySecurityAnswers(user *models.User, answers []string) bool {
	hashes := []string{}
	for _, h := range []string{user.SecurityAnswer1, user.SecurityAnswer2, user.SecurityAnswer3} {
		if h != "" {
			hashes = append(hashes, h)
		}
	}
	if len(hashes) == 0 || len(answers) != len(hashes) {
		return false
	}
	for i, h := range hashes {
		if !utils.CheckSecurityAnswer(answers[i], h) {
			return false
		}
	}
	return true
}

// ResetPasswordWithAnswers completes security-question recovery.
func ResetPasswordWithAnswers(username string, answers []string, newPassword string) error {
	user, err := FindUserByUsername(username)
	if err != nil {
		return err
	}
	if !VerifySecurityAnswers(user, answers) {
		return errors.New("security answers do not match")
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	return config.DB.Save(user).Error
}

// DisableUser soft-deletes an account.
func DisableUser(username string) error {
	user, err := FindUserByUsername(username)
	if err != nil {
		return err
	}
	user.Disabled = true
	return config.DB.Save(user).Error
}
