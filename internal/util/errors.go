package util

import "errors"

var (
	ErrUsernameTaken   = errors.New("username already exists")
	ErrLearnerNotFound = errors.New("learner not found")
)
