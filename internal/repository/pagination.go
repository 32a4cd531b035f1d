package repository

import "gorm.io/gorm"

// maxPageSize 后台列表单页上限
const maxPageSize = 100

// applyPagination 按页码分页；pageSize <= 0 表示不分页，超过上限时截断
func applyPagination(query *gorm.DB, page, pageSize int) *gorm.DB {
	if query == nil || pageSize <= 0 {
		return query
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	if page < 1 {
		page = 1
	}
	return query.Limit(pageSize).Offset((page - 1) * pageSize)
}
