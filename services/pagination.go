package services

const (
	MaxPageSize     = 30
	DefaultPageSize = 10
)

// PaginationMetadata travels in the X-Pagination response header.
type PaginationMetadata struct {
	TotalItemCount int `json:"totalItemCount"`
	TotalPageCount int `json:"totalPageCount"`
	PageSize       int `json:"pageSize"`
	CurrentPage    int `json:"currentPage"`
}

// NewPaginationMetadata requires pageSize > 0.
func NewPaginationMetadata(totalItemCount, pageSize, currentPage int) PaginationMetadata {
	return PaginationMetadata{
		TotalItemCount: totalItemCount,
		TotalPageCount: (totalItemCount + pageSize - 1) / pageSize,
		PageSize:       pageSize,
		CurrentPage:    currentPage,
	}
}

// ClampPageSize caps pageSize at MaxPageSize. Values below 1 pass through
// so that CheckPage can reject them.
func ClampPageSize(pageSize int) int {
	if pageSize > MaxPageSize {
		return MaxPageSize
	}
	return pageSize
}

func CheckPage(pageNumber, pageSize int) error {
	if pageSize < 1 || pageNumber < 1 {
		return ErrInvalidPage
	}
	return nil
}

// pageOffset is the number of records skipped before the page starts.
// pageNumber must not exceed the page count.
func pageOffset(pageNumber, pageSize int) int {
	return pageSize * (pageNumber - 1)
}
