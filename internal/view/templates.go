package view

import "html/template"

type itemView struct {
	Ordinal   int
	Topic     string
	Question  template.HTML
	Solution  template.HTML
	ControlID string
	PanelID   string
	Label     string
	Class     string
	Visible   bool
}

type contentView struct {
	Status  string
	Message string
	Items   []itemView
}

// contentTemplate renders one container. The element ids and classes are
// what script.js keys its toggle handlers on.
var contentTemplate = template.Must(template.New("content").Parse(
	`{{if eq .Status "loading"}}<p class="loading">{{.Message}}</p>` +
		`{{else if eq .Status "failed"}}<p class="error">{{.Message}}</p>` +
		`{{else if .Items}}<ol class="question-list">
{{range .Items}}<li class="question-item">
  <div class="question-header"><span class="question-number">{{.Ordinal}}.</span> <span class="question-topic">{{.Topic}}</span></div>
  <div class="question-text">{{.Question}}</div>
  <button type="button" class="solution-toggle {{.Class}}" id="{{.ControlID}}" data-target="{{.PanelID}}" aria-expanded="{{.Visible}}">{{.Label}}</button>
  <div class="solution-panel" id="{{.PanelID}}"{{if not .Visible}} hidden{{end}}>{{.Solution}}</div>
</li>
{{end}}</ol>{{else if eq .Status "ready"}}<p class="empty">No questions available.</p>{{end}}`))
