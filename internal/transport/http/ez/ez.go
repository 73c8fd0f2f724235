// Package ez registers typed actions on a gin group: bind input, resolve the
// current user, call the handler, and write the envelope in one place.
package ez

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-gin-contacts/internal/core/apperr"
	"go-gin-contacts/internal/domain"
	mdw "go-gin-contacts/internal/transport/http/middleware"
	resp "go-gin-contacts/internal/transport/http/response"
)

// 绑定方式
type Binder string

const (
	BindJSON  Binder = "json"  // 从 JSON 绑定
	BindQuery Binder = "query" // 从 URL ?a=b 绑定
	BindNone  Binder = "none"  // 只绑定路径参数
)

type EZ struct {
	g *gin.RouterGroup
	l *zap.Logger
}

func New(g *gin.RouterGroup, l *zap.Logger) EZ {
	if l == nil {
		l = zap.NewNop()
	}
	return EZ{g: g, l: l}
}

// 动作定义：I 入参，O 出参
type Action[I any, O any] struct {
	Method  string // "GET" | "POST" | "PUT" | "PATCH" | "DELETE"
	Path    string // 例："/contacts/:contactId"
	Binder  Binder
	Auth    bool // 是否要求 X-API-TOKEN 已解析出用户
	Handler func(c *gin.Context, u *domain.User, in *I) (O, error)
}

// Page 分页出参，写成 {data, paging}
type Page[T any] struct {
	Items  []T
	Paging resp.Paging
}

func (p Page[T]) envelope() resp.WebResponse { return resp.Paged(p.Items, p.Paging) }

type enveloper interface{ envelope() resp.WebResponse }

func RegisterAction[I any, O any](e EZ, a Action[I, O]) {
	h := func(c *gin.Context) {
		// 1) 当前用户
		var u *domain.User
		if a.Auth {
			u = mdw.CurrentUser(c)
			if u == nil {
				c.JSON(http.StatusUnauthorized, resp.Error(resp.CodeUnauthorized, ""))
				return
			}
		}

		// 2) 绑定入参：路径参数 + body/query
		var in I
		if err := bind(c, a, &in); err != nil {
			c.JSON(http.StatusBadRequest, resp.Error(resp.CodeBadRequest, bindMessage(err)))
			return
		}

		// 3) 执行
		out, err := a.Handler(c, u, &in)

		// 4) 统一错误映射
		if err != nil {
			Fail(c, e.l, err)
			return
		}
		if p, ok := any(out).(enveloper); ok {
			c.JSON(http.StatusOK, p.envelope())
			return
		}
		c.JSON(http.StatusOK, resp.OK(out))
	}

	switch strings.ToUpper(a.Method) {
	case http.MethodGet:
		e.g.GET(a.Path, h)
	case http.MethodPut:
		e.g.PUT(a.Path, h)
	case http.MethodPatch:
		e.g.PATCH(a.Path, h)
	case http.MethodDelete:
		e.g.DELETE(a.Path, h)
	default: // 默认 POST
		e.g.POST(a.Path, h)
	}
}

func bind[I any, O any](c *gin.Context, a Action[I, O], in *I) error {
	if strings.Contains(a.Path, ":") {
		if err := c.ShouldBindUri(in); err != nil {
			return err
		}
	}
	switch a.Binder {
	case BindJSON:
		return c.ShouldBindJSON(in)
	case BindQuery:
		dropEmptyQuery(c.Request)
		return c.ShouldBindQuery(in)
	default:
		return nil
	}
}

// dropEmptyQuery ?size= 这类空值按未传处理，让 form tag 的 default 生效
func dropEmptyQuery(r *http.Request) {
	q := r.URL.Query()
	changed := false
	for k, vs := range q {
		kept := vs[:0]
		for _, v := range vs {
			if v != "" {
				kept = append(kept, v)
			}
		}
		switch {
		case len(kept) == 0:
			delete(q, k)
		case len(kept) != len(vs):
			q[k] = kept
		default:
			continue
		}
		changed = true
	}
	if changed {
		r.URL.RawQuery = q.Encode()
	}
}

func bindMessage(err error) string {
	var mbe *http.MaxBytesError
	if errors.As(err, &mbe) {
		return resp.CodeMsgMap[resp.CodeTooLarge]
	}
	return "malformed request: " + err.Error()
}

// Fail apperr 按自身状态码输出；其余一律 500，原始错误只进日志
func Fail(c *gin.Context, l *zap.Logger, err error) {
	status := apperr.StatusOf(err)
	msg := resp.CodeMsgMap[resp.CodeServerError]
	if ae := apperr.As(err); ae != nil && status < http.StatusInternalServerError {
		msg = ae.Msg
	}
	if status >= http.StatusInternalServerError {
		l.Error("request failed",
			zap.String("rid", c.GetString(mdw.KeyRequestID)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		_ = c.Error(err)
	}
	c.JSON(status, resp.Error(status, msg))
}
