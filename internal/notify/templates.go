package notify

import "fmt"

// Типы уведомлений. Ключуют фиксированные шаблоны заголовка/текста.
const (
	TypeInterviewScheduled = "interview_scheduled"
	TypeOfferMade          = "offer_made"
	TypeHired              = "hired"
	TypeBadgeAwarded       = "badge_awarded"
	TypeTranscriptReady    = "transcript_ready"
	TypeDirectMessage      = "direct_message"
)

// InterviewScheduled - уведомление кандидату о назначенном интервью
func InterviewScheduled(userID, applicationID, dateTime string) Request {
	return Request{
		UserID:  userID,
		Type:    TypeInterviewScheduled,
		Title:   "Interview scheduled",
		Message: fmt.Sprintf("Your interview has been scheduled for %s.", dateTime),
		Data:    map[string]interface{}{"application_id": applicationID, "interview_date": dateTime},
	}
}

// OfferMade - уведомление кандидату о предложении
func OfferMade(userID, applicationID string) Request {
	return Request{
		UserID:  userID,
		Type:    TypeOfferMade,
		Title:   "Offer received",
		Message: "Congratulations! The employer has made you an offer.",
		Data:    map[string]interface{}{"application_id": applicationID},
	}
}

// Hired - уведомление кандидату о найме
func Hired(userID, applicationID string) Request {
	return Request{
		UserID:  userID,
		Type:    TypeHired,
		Title:   "You are hired",
		Message: "Congratulations! You have been hired for the position.",
		Data:    map[string]interface{}{"application_id": applicationID},
	}
}

// BadgeAwarded - уведомление студенту о новом бейдже
func BadgeAwarded(userID, badgeName string) Request {
	return Request{
		UserID:  userID,
		Type:    TypeBadgeAwarded,
		Title:   "Badge awarded",
		Message: fmt.Sprintf("You have earned the %q badge.", badgeName),
		Data:    map[string]interface{}{"badge_name": badgeName},
	}
}

// TranscriptReady - уведомление работодателю об одобренном транскрипте
func TranscriptReady(userID, applicantID string) Request {
	return Request{
		UserID:  userID,
		Type:    TypeTranscriptReady,
		Title:   "Transcript available",
		Message: "The academic transcript you requested has been approved.",
		Data:    map[string]interface{}{"applicant_id": applicantID},
	}
}

// DirectMessage - прямое сообщение работодателя кандидату (communications)
func DirectMessage(userID, fromName, text string) Request {
	return Request{
		UserID:  userID,
		Type:    TypeDirectMessage,
		Title:   fmt.Sprintf("Message from %s", fromName),
		Message: text,
		Data:    map[string]interface{}{"from": fromName},
	}
}
