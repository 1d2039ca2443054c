package models

type UserRole string
type JobPostingStatus string
type ApplicationStatus string
type TicketStatus string
type TranscriptRequestStatus string
type SubmissionStatus string

const (
	UserRoleStudent  UserRole = "student"
	UserRoleEmployer UserRole = "employer"
	UserRoleAdmin    UserRole = "admin"

	JobPostingStatusPending  JobPostingStatus = "pending"
	JobPostingStatusApproved JobPostingStatus = "approved"
	JobPostingStatusRejected JobPostingStatus = "rejected"
	JobPostingStatusClosed   JobPostingStatus = "closed"

	ApplicationStatusPending            ApplicationStatus = "pending"
	ApplicationStatusReviewed           ApplicationStatus = "reviewed"
	ApplicationStatusInterviewScheduled ApplicationStatus = "interview_scheduled"
	ApplicationStatusOfferMade          ApplicationStatus = "offer_made"
	ApplicationStatusRejected           ApplicationStatus = "rejected"
	ApplicationStatusHired              ApplicationStatus = "hired"

	TicketStatusOpen      TicketStatus = "open"
	TicketStatusResolved  TicketStatus = "resolved"
	TicketStatusEscalated TicketStatus = "escalated"

	TranscriptRequestStatusPending  TranscriptRequestStatus = "pending"
	TranscriptRequestStatusApproved TranscriptRequestStatus = "approved"
	TranscriptRequestStatusRejected TranscriptRequestStatus = "rejected"

	SubmissionStatusPendingReview SubmissionStatus = "pending_review"
	SubmissionStatusApproved      SubmissionStatus = "approved"
	SubmissionStatusRejected      SubmissionStatus = "rejected"
)
