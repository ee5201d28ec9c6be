package util

import "errors"

var (
	ErrEmailRegistered = errors.New("该邮箱已被注册")

	// ErrNotFound 被引用的推荐/复习条目/题目不存在，或不属于当前用户
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidState 对已处理过的推荐再次做完成转移
	ErrInvalidState = errors.New("invalid state transition")
	// ErrInvalidArgument 入参非法：k<=0、未知枚举值、负的耗时等
	ErrInvalidArgument = errors.New("invalid argument")
)
