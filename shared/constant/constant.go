package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUserID   contextKey = "user_id"
	ContextKeyUserName contextKey = "user_name"
	ContextKeyUserRole contextKey = "user_role"
	ContextKeyTokenID  contextKey = "token_id"
)

const (
	RoleOwner    = "owner"
	RoleCustomer = "customer"
)

const (
	RequestParamPage    = "page"
	RequestParamLimit   = "limit"
	RequestParamSortBy  = "sort_by"
	RequestParamSortDir = "sort_dir"
)

const (
	RequestParamID           = "id"
	RequestParamRoomID       = "room_id"
	RequestParamHouseID      = "house_id"
	RequestParamOwnerID      = "owner_id"
	RequestParamCustomerID   = "customer_id"
	RequestParamBookingID    = "booking_id"
	RequestParamCheckInDate  = "check_in_date"
	RequestParamCheckOutDate = "check_out_date"
	RequestParamFilter       = "filter"
)

const (
	DefaultValuePage    = 1
	DefaultValueLimit   = 10
	DefaultValueSortBy  = "created_at"
	DefaultValueSortDir = "DESC"
)

const (
	FieldCreatedAt  = "created_at"
	FieldCreatedBy  = "created_by"
	FieldModifiedAt = "modified_at"
	FieldModifiedBy = "modified_by"
)

const (
	PqErrorCodeUniqueViolation = "23505"
	PqErrorCodeFkViolation     = "23503"
)

const (
	DateFormat     = time.RFC3339
	DateOnlyFormat = "2006-01-02"
	ClockFormat    = "15:04"
)

const (
	BookingHistoryFilterAll     = "all"
	BookingHistoryFilterCurrent = "current"
	BookingHistoryFilterPast    = "past"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelEventScopeName      = "event"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderAuthorization   = "Authorization"
	RequestHeaderUserAgent       = "User-Agent"
	RequestHeaderContentType     = "Content-Type"
	HeaderRateLimit              = "X-RateLimit-Limit"
	HeaderRateLimitRemaining     = "X-RateLimit-Remaining"
	HeaderRateLimitWindow        = "X-RateLimit-Window"
	RequestHeaderRequestID       = "X-Request-ID"
	RequestHeaderForwardedFor    = "X-Forwarded-For"
	RequestHeaderRealIP          = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Asterix = "*"
	Empty   = ""
)
