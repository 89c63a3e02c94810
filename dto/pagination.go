package dto

// ListChecklistsQuery binds the query string of GET /checklists.
type ListChecklistsQuery struct {
	SearchQuery string `form:"searchQuery"`
	PageNumber  int    `form:"pageNumber,default=1"`
	PageSize    int    `form:"pageSize,default=10"`
}
