package service

import (
	"bytes"
	"text/template"
	"time"

	"github.com/jy02739244/Domain-AutoCheck/internal/domain"
	"github.com/jy02739244/Domain-AutoCheck/internal/renewal"
)

const batchSeparator = "\n━━━━━━━━━━━━━━━━\n\n"

// 單一域名區塊，兩種提醒共用
const entryTemplate = `{{define "entry"}}🌍 域名: {{html .Name}}
{{if .Registrar}}🏬 註冊商: {{html .Registrar}}
{{end}}{{if gt .DaysLeft 0}}⏳ 剩餘時間: {{.DaysLeft}} 天{{else}}⏳ 已過期: {{abs .DaysLeft}} 天{{end}}
📅 到期日期: {{.ExpiryDate}}
⚠️ 點擊續期: {{if .RenewLink}}{{html .RenewLink}}{{else}}未設置續期連結{{end}}
{{end}}`

// 到期與過期合併成一則訊息，減少 API 呼叫
const batchTemplate = entryTemplate + `{{if .Expiring}}🚨 <b>域名到期提醒</b> 🚨
===================

{{range $i, $e := .Expiring}}{{if $i}}
{{end}}{{template "entry" $e}}{{end}}{{end}}{{if and .Expiring .Expired}}` + batchSeparator + `{{end}}{{if .Expired}}🚫 <b>域名已過期提醒</b> 🚫
=====================

{{range $i, $e := .Expired}}{{if $i}}
{{end}}{{template "entry" $e}}{{end}}{{end}}`

const domainTestTemplate = entryTemplate + `{{if .Expired}}🚫 <b>域名已過期測試通知</b> 🚫
========================={{else}}🚨 <b>域名到期測試通知</b> 🚨
======================={{end}}

這是一則測試通知，用於預覽域名{{if .Expired}}已過期{{else}}到期{{end}}提醒的格式：

{{template "entry" .Entry}}`

const testMessage = "這是一則來自域名監控系統的測試通知，如果您收到此訊息，表示 Telegram 通知設定成功！"

var templateFuncs = template.FuncMap{
	"abs": func(n int) int {
		if n < 0 {
			return -n
		}
		return n
	},
}

var (
	batchTmpl      = template.Must(template.New("batch").Funcs(templateFuncs).Parse(batchTemplate))
	domainTestTmpl = template.Must(template.New("domain-test").Funcs(templateFuncs).Parse(domainTestTemplate))
)

// FormatBatch 把到期與過期兩組渲染成一則 HTML 訊息
func FormatBatch(batch domain.NotificationBatch) (string, error) {
	return render(batchTmpl, batch)
}

// FormatDomainTest 單一域名的測試通知
func FormatDomainTest(d domain.DomainRecord, now time.Time) (string, error) {
	daysLeft := renewal.DaysLeft(d.ExpiryDate, now)
	return render(domainTestTmpl, struct {
		Expired bool
		Entry   domain.BatchEntry
	}{
		Expired: daysLeft <= 0,
		Entry:   toBatchEntry(d, daysLeft),
	})
}

func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
