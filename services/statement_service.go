package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	config "github.com/mkobay/tutor_manage/configs"
	"github.com/mkobay/tutor_manage/models"
)

// GenerateStatementPDF renders a monthly billing statement to PDF and
// uploads it, returning the hosted URL. The statement is a snapshot of the
// BillingInfo passed in; it is not recomputed here.
func GenerateStatementPDF(student models.Student, info BillingInfo) (string, error) {
	htmlData, err := generateStatementHTML(student, info)
	if err != nil {
		return "", fmt.Errorf("failed to render statement HTML: %w", err)
	}

	pdfBytes, err := generatePDFFromHTML(htmlData)
	if err != nil {
		return "", fmt.Errorf("failed to generate statement PDF: %w", err)
	}

	return uploadStatementPDF(pdfBytes, student.ID.String(), info.TargetMonth)
}

func generateStatementHTML(student models.Student, info BillingInfo) (string, error) {
	tmpl, err := template.ParseFiles("templates/statement.html")
	if err != nil {
		return "", err
	}

	data := struct {
		StudentName       string
		TargetMonth       string
		LessonFeeTotal    int
		TransportFeeTotal int
		TotalAmount       int
		LessonCount       int
		IsConfirmed       bool
		ConfirmationDate  string
		Lessons           []models.Lesson
	}{
		StudentName:       student.Name,
		TargetMonth:       info.TargetMonth.Format("January 2006"),
		LessonFeeTotal:    info.LessonFeeTotal,
		TransportFeeTotal: info.TransportFeeTotal,
		TotalAmount:       info.TotalAmount,
		LessonCount:       info.LessonCount,
		IsConfirmed:       info.IsConfirmed,
		ConfirmationDate:  info.ConfirmationDate.Format("2006-01-02"),
		Lessons:           info.Lessons,
	}

	var renderedHTML bytes.Buffer
	if err := tmpl.Execute(&renderedHTML, data); err != nil {
		return "", err
	}
	return renderedHTML.String(), nil
}

func generatePDFFromHTML(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

func uploadStatementPDF(fileBytes []byte, studentID string, targetMonth time.Time) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("statements/%s_%s_%s", studentID, targetMonth.Format("2006-01"), uuid.New().String()),
		Folder:       "tutor_manage_statements",
		ResourceType: "raw",
	}

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams)
	if err != nil {
		return "", err
	}

	return uploadResult.SecureURL, nil
}
