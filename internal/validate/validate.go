package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"
	"github.com/sidereusnuntius/goblog/internal/domain"
)

const (
	MaxPasswordLen = 72
	MaxUsernameLen = 64
	MaxBioLen      = 1024
	MaxTitleLen    = 200
	MaxContentLen  = 20000
	MaxCommentLen  = 2000
	MaxImages      = 5
)

var v = validator.New()

type signUpForm struct {
	Username string `validate:"required,max=64"`
	Email    string `validate:"required,email"`
	// bcrypt ignores everything past the 72nd byte.
	Password string `validate:"required,max=72"`
}

type postForm struct {
	Title   string `validate:"required,max=200"`
	Content string `validate:"required,max=20000"`
}

type profileForm struct {
	Username string `validate:"required,max=64"`
	Bio      string `validate:"max=1024"`
}

func SignUpForm(username, password, email string) error {
	return describe(v.Struct(signUpForm{
		Username: username,
		Email:    email,
		Password: password,
	}))
}

func Post(title, content string) error {
	return describe(v.Struct(postForm{
		Title:   title,
		Content: content,
	}))
}

func Profile(username, bio string) error {
	return describe(v.Struct(profileForm{
		Username: username,
		Bio:      bio,
	}))
}

func Comment(content string) error {
	if strings.TrimSpace(content) == "" {
		return errors.New("empty comment")
	}
	if len(content) > MaxCommentLen {
		return fmt.Errorf("comment too long; max %d characters", MaxCommentLen)
	}
	return nil
}

// Image detects the type of an uploaded image from its content, which must be a JPEG or PNG image.
func Image(content []byte) (string, error) {
	if len(content) == 0 {
		return "", errors.New("empty file")
	}

	mime := mimetype.Detect(content)
	switch {
	case mime.Is(domain.MimeJPEG):
		return domain.MimeJPEG, nil
	case mime.Is(domain.MimePNG):
		return domain.MimePNG, nil
	}
	return "", fmt.Errorf("unsupported file type %s; only jpeg and png images are accepted", mime.String())
}

func Password(password string) error {
	return describe(v.Var(password, "required,max=72"), "password")
}

func Email(email string) error {
	return describe(v.Var(email, "required,email"), "email")
}

func Username(username string) error {
	return describe(v.Var(username, "required,max=64"), "username")
}

// describe turns validator errors into short, human readable messages that can be shown on a form.
func describe(err error, field ...string) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	errs := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		name := strings.ToLower(fe.Field())
		if len(field) > 0 {
			name = field[0]
		}
		switch fe.Tag() {
		case "required":
			errs = append(errs, fmt.Errorf("empty %s", name))
		case "max":
			errs = append(errs, fmt.Errorf("%s too long; max %s characters", name, fe.Param()))
		case "email":
			errs = append(errs, fmt.Errorf("invalid %s", name))
		default:
			errs = append(errs, fmt.Errorf("invalid %s", name))
		}
	}
	return errors.Join(errs...)
}
