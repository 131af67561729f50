// Package summarizer 提供课表查询结果的文字摘要。
//
// 外部生成服务只是可选协作者：调用方必须持有本地兜底文案，
// 任何失败都不能影响查询结果本身。
package summarizer

import "context"

// Summarizer 根据提示词生成一段摘要
// 失败时返回包装了 pkg/errors.ErrDependencyUnavailable 的错误
type Summarizer interface {
	Summarize(ctx context.Context, prompt string) (string, error)
}

// Func 将普通函数适配为 Summarizer
type Func func(ctx context.Context, prompt string) (string, error)

// Summarize 实现 Summarizer
func (f Func) Summarize(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
