package response

import (
	"encoding/json"
	"net/http"

	"github.com/resto-next/internal/models"

	"github.com/gin-gonic/gin"
)

// Response 统一响应结构
type Response struct {
	StatusCode int         `json:"status_code"` // 业务状态码
	Msg        string      `json:"msg"`         // 提示消息
	Data       interface{} `json:"data"`        // 数据内容
}

// PageResponse 分页响应结构
type PageResponse struct {
	StatusCode int         `json:"status_code"`
	Msg        string      `json:"msg"`
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

// Pagination 分页信息
type Pagination struct {
	Page      int   `json:"page"`
	PageSize  int   `json:"page_size"`
	Total     int64 `json:"total"`
	TotalPage int64 `json:"total_page"`
}

// NewPagination 根据总数计算分页信息
func NewPagination(page, pageSize int, total int64) Pagination {
	totalPage := int64(0)
	if pageSize > 0 {
		totalPage = (total + int64(pageSize) - 1) / int64(pageSize)
	}
	return Pagination{Page: page, PageSize: pageSize, Total: total, TotalPage: totalPage}
}

// CartResult 购物车写操作与下单的响应结构，cart_total 为 JSON 数字
type CartResult struct {
	Success   bool         `json:"success"`
	Message   string       `json:"message"`
	CartTotal *json.Number `json:"cart_total,omitempty"`
	CartCount *int64       `json:"cart_count,omitempty"`
	Data      interface{}  `json:"data,omitempty"`
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		StatusCode: CodeOK,
		Msg:        "success",
		Data:       data,
	})
}

// SuccessWithMsg 成功响应（自定义消息）
func SuccessWithMsg(c *gin.Context, msg string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		StatusCode: CodeOK,
		Msg:        msg,
		Data:       data,
	})
}

// SuccessWithPage 分页成功响应
func SuccessWithPage(c *gin.Context, data interface{}, pagination Pagination) {
	c.JSON(http.StatusOK, PageResponse{
		StatusCode: CodeOK,
		Msg:        "success",
		Data:       data,
		Pagination: pagination,
	})
}

// Error 错误响应（HTTP 200 + 业务状态码）
func Error(c *gin.Context, statusCode int, msg string) {
	c.JSON(http.StatusOK, Response{
		StatusCode: statusCode,
		Msg:        msg,
		Data:       attachRequestID(c, nil),
	})
}

// CartSuccess 购物车写操作成功：附带最新合计与行数
func CartSuccess(c *gin.Context, msg string, total models.Money, count int64, data interface{}) {
	CartSuccessWithStatus(c, http.StatusOK, msg, total, count, data)
}

// CartSuccessWithStatus 同 CartSuccess，可指定 HTTP 状态码（下单返回 201）
func CartSuccessWithStatus(c *gin.Context, httpStatus int, msg string, total models.Money, count int64, data interface{}) {
	amount := json.Number(total.StringFixed(2))
	c.JSON(httpStatus, CartResult{
		Success:   true,
		Message:   msg,
		CartTotal: &amount,
		CartCount: &count,
		Data:      data,
	})
}

// CartFailure 购物车写操作失败：使用真实 HTTP 状态码
func CartFailure(c *gin.Context, httpStatus int, msg string) {
	c.JSON(httpStatus, CartResult{
		Success: false,
		Message: msg,
	})
}

// HTTPStatus 业务状态码转换为 HTTP 状态码
func HTTPStatus(code int) int {
	switch code {
	case CodeBadRequest:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeTooManyRequests:
		return http.StatusTooManyRequests
	case CodeOK:
		return http.StatusOK
	default:
		return http.StatusInternalServerError
	}
}

func attachRequestID(c *gin.Context, data interface{}) interface{} {
	requestID := ""
	if c != nil {
		if value, ok := c.Get("request_id"); ok {
			if id, ok := value.(string); ok {
				requestID = id
			}
		}
	}
	if requestID == "" {
		return data
	}
	if data == nil {
		return gin.H{"request_id": requestID}
	}
	switch v := data.(type) {
	case gin.H:
		if _, ok := v["request_id"]; !ok {
			v["request_id"] = requestID
		}
		return v
	default:
		return gin.H{
			"request_id": requestID,
			"data":       data,
		}
	}
}
