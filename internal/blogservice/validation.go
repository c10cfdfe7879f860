package blogservice

import "github.com/apiflux/blogapi/internal/common"

func validateTitle(v *common.Validator, title string) {
	v.Check(title != "", "title", "must be provided")
	v.Check(len(title) <= 255, "title", "must not be more than 255 characters long")
}

func validateContent(v *common.Validator, content string) {
	v.Check(content != "", "content", "must be provided")
}

func validateExcerpt(v *common.Validator, excerpt *string) {
	if excerpt == nil {
		return
	}
	v.Check(len(*excerpt) <= 500, "excerpt", "must not be more than 500 characters long")
}

func validateCommentContent(v *common.Validator, content string) {
	v.Check(content != "", "content", "must be provided")
}

func validateID(v *common.Validator, id int, name string) {
	v.Check(id > 0, name, "must be greater than zero")
}
