package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/mkobay/tutor_manage/database"
	"github.com/mkobay/tutor_manage/models"
	"github.com/mkobay/tutor_manage/notifications"
	"github.com/mkobay/tutor_manage/services"
)

// SendCreditExpiryNotices emails parents about makeup credits entering the
// urgent band (seven days or fewer until expiry). Runs daily.
func SendCreditExpiryNotices() {
	log.Println("Running job: SendCreditExpiryNotices...")

	today := services.Today()
	from, to := noticeWindow(today)

	var credits []models.MakeupCredit
	err := database.DB.
		Preload("Student.Parent").
		Where("used_minutes < total_minutes AND expires_at >= ? AND expires_at <= ?", from, to).
		Find(&credits).Error
	if err != nil {
		log.Printf("Error checking for expiring makeup credits: %v", err)
		return
	}

	if len(credits) == 0 {
		log.Println("No expiring makeup credits found.")
		return
	}

	for _, credit := range credits {
		parent := credit.Student.Parent
		if parent == nil {
			continue
		}

		status := services.DisplayStatus(credit.ExpiresAt, today)
		emailBody := fmt.Sprintf(
			"<h1>Makeup Credit Expiring</h1><p>%s has a makeup credit of %d minutes that %s. Please request a makeup lesson before it expires.</p>",
			credit.Student.Name,
			credit.RemainingMinutes(),
			status,
		)
		go notifications.SendEmail(parent.FullName, parent.Email, "Makeup Credit Expiring Soon", emailBody)
	}

	log.Printf("Sent expiry notices for %d makeup credit(s).", len(credits))
}

// noticeWindow bounds the digest to credits expiring today through seven
// days out, inclusive on both ends. A credit on its expiration day can no
// longer fund a request, but it still belongs in the notice.
func noticeWindow(today time.Time) (time.Time, time.Time) {
	return today, today.AddDate(0, 0, 7)
}
