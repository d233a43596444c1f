package util

import "errors"

var (
	ErrUserNotFound       = errors.New("用户不存在")
	ErrEmailRegistered    = errors.New("该邮箱已被注册")
	ErrUsernameTaken      = errors.New("该用户名已被占用")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionFinished    = errors.New("session already finished")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrStepNotFound       = errors.New("step not found")
	ErrStepNotActive      = errors.New("step not active")
	ErrActionItemNotFound = errors.New("action item not found")
	ErrActivityNotFound   = errors.New("remedial activity not found")
	ErrNotInRemedial      = errors.New("step is not in remedial state")
	ErrStepInRemedial     = errors.New("step is in remedial, complete the remedial set first")
	ErrAITextRejected     = errors.New("answer looks machine generated")
	ErrEmptyAnswer        = errors.New("answer must not be empty")
)
