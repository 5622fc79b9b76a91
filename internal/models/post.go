package models

// 블로그 게시글. imagePath는 public 디렉터리 기준 상대 경로 (images/<파일명>)
type Post struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImagePath   string `json:"imagePath"`
	AuthorName  string `json:"authorName"`
	BlogTitle   string `json:"blogTitle"`
	ParaGraph   string `json:"paraGraph"`
}

// 폼에서 넘어온 텍스트 필드. 빈 값은 "변경 없음"으로 취급
type PostFields struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	AuthorName  string `form:"authorname"`
	BlogTitle   string `form:"blogtitle"`
	ParaGraph   string `form:"paragraph"`
}
