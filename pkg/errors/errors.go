package errors

import "errors"

// ErrDependencyUnavailable 外部依赖（如 AI 摘要服务）不可用，调用方应回退到本地逻辑
var ErrDependencyUnavailable = errors.New("外部依赖不可用")

// ErrCatalogInvalid 课表基础数据引用不完整或时间段非法
var ErrCatalogInvalid = errors.New("课表数据不一致")
