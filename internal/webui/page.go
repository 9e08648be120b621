package webui

import (
	"embed"
	"html/template"
	"io"

	"terrain_alert/internal/widget"
	"terrain_alert/internal/widget/view"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/page.html"))

type pageData struct {
	Value        string
	Status       string
	ModalHTML    template.HTML
	ModalVisible bool
}

func newPageData(s widget.Snapshot) (pageData, error) {
	data := pageData{Value: s.Value, Status: s.Status, ModalVisible: s.ModalVisible}
	if s.Modal != nil {
		body, err := view.HTML(*s.Modal)
		if err != nil {
			return pageData{}, err
		}
		data.ModalHTML = body
	}
	return data, nil
}

func writePage(w io.Writer, s widget.Snapshot) error {
	data, err := newPageData(s)
	if err != nil {
		return err
	}
	return pageTemplate.ExecuteTemplate(w, "page", data)
}
