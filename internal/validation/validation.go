// Package validation holds input validation rules for API payloads.
package validation

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
)

const (
	MinUsernameLen = 3
	MaxUsernameLen = 30
	MinPasswordLen = 6
	MaxTitleLen    = 100
	MaxCaptionLen  = 500
	MaxLocationLen = 100
	MaxPeopleTags  = 20
	MaxCommentLen  = 500
)

// ValidateUsername checks the username length bounds.
func ValidateUsername(username string) error {
	if len(username) < MinUsernameLen {
		return fmt.Errorf("username must be at least %d characters", MinUsernameLen)
	}
	if len(username) > MaxUsernameLen {
		return fmt.Errorf("username must be at most %d characters", MaxUsernameLen)
	}
	return nil
}

// ValidateEmail checks the email is a parseable address.
func ValidateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return errors.New("invalid email format")
	}
	return nil
}

// ValidatePassword checks the minimum password length.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters", MinPasswordLen)
	}
	return nil
}

// ValidateComment checks comment text bounds (1-500 characters).
func ValidateComment(text string) error {
	if text == "" {
		return errors.New("comment cannot be empty")
	}
	if len(text) > MaxCommentLen {
		return fmt.Errorf("comment must be at most %d characters", MaxCommentLen)
	}
	return nil
}

// ValidateUploadMetadata checks the metadata accompanying a media upload.
func ValidateUploadMetadata(title, caption, location string, people []string) error {
	if strings.TrimSpace(caption) == "" {
		return errors.New("caption is required")
	}
	if len(caption) > MaxCaptionLen {
		return fmt.Errorf("caption must be at most %d characters", MaxCaptionLen)
	}
	if len(title) > MaxTitleLen {
		return fmt.Errorf("title must be at most %d characters", MaxTitleLen)
	}
	if len(location) > MaxLocationLen {
		return fmt.Errorf("location must be at most %d characters", MaxLocationLen)
	}
	if len(people) > MaxPeopleTags {
		return fmt.Errorf("maximum %d people tags", MaxPeopleTags)
	}
	return nil
}
