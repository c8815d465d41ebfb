package service

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
)

const (
	msgInvalidDate       = "Invalid date format. Use ISO 8601 format"
	msgInvalidTime       = "Invalid time format. Use HH:MM format (e.g., 09:30)"
	msgUniqueOrder       = "Each exercise must have a unique order number"
	msgMissingReference  = "Either scheduledWorkoutId or workoutPlanId must be provided"
	msgDoubledReference  = "Only one of scheduledWorkoutId or workoutPlanId can be provided"
	tagUniqueOrder       = "unique_order"
	tagMissingReference  = "reference_required"
	tagDoubledReference  = "reference_exclusive"
	dateOnlyLayout       = "2006-01-02"
	scheduledTimeLayout  = "15:04"
	maxPlanExercisesNoun = "workout plan"
	maxLogExercisesNoun  = "workout log"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once

	timeRegexp = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)
	indexExpr  = regexp.MustCompile(`\[(\d+)\]`)

	fieldLabels = map[string]string{
		"name":        "Name",
		"password":    "Password",
		"description": "Description",
		"sets":        "Sets",
		"reps":        "Reps",
		"weight":      "Weight",
		"duration":    "Duration",
		"order":       "Order",
		"notes":       "Notes",
		"status":      "Status",
		"category":    "Category",
		"muscleGroup": "Muscle group",
		"exercises":   "Exercises",
	}
	// Format fields keep one message for every failure, missing values included.
	formatMessages = map[string]string{
		"email":              "Invalid email format",
		"exerciseId":         "Invalid exercise ID",
		"workoutPlanId":      "Invalid workout plan ID",
		"scheduledWorkoutId": "Invalid scheduled workout ID",
		"scheduledDate":      msgInvalidDate,
		"completedAt":        msgInvalidDate,
		"startDate":          msgInvalidDate,
		"endDate":            msgInvalidDate,
		"scheduledTime":      msgInvalidTime,
	}
	exercisesNouns = map[string]string{
		"CreateWorkoutPlanRequest": maxPlanExercisesNoun,
		"UpdateWorkoutPlanRequest": maxPlanExercisesNoun,
		"CreateWorkoutLogRequest":  maxLogExercisesNoun,
		"UpdateWorkoutLogRequest":  maxLogExercisesNoun,
	}
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		validate.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
			return timeRegexp.MatchString(fl.Field().String())
		})
		// UTC only: offsets such as +02:00 are rejected
		validate.RegisterValidation("iso_datetime", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			if !strings.HasSuffix(value, "Z") {
				return false
			}
			_, err := time.Parse(time.RFC3339, value)
			return err == nil
		})
		// Query filters take either a full timestamp or a bare date
		validate.RegisterValidation("iso_date", func(fl validator.FieldLevel) bool {
			_, err := parseFilterDate(fl.Field().String(), false)
			return err == nil
		})
		validate.RegisterStructValidation(planOrderValidation, CreateWorkoutPlanRequest{}, UpdateWorkoutPlanRequest{})
		validate.RegisterStructValidation(logReferenceValidation, CreateWorkoutLogRequest{})
	})
}

func planOrderValidation(sl validator.StructLevel) {
	var entries []PlanExerciseRequest
	switch req := sl.Current().Interface().(type) {
	case CreateWorkoutPlanRequest:
		entries = req.Exercises
	case UpdateWorkoutPlanRequest:
		entries = req.Exercises
	}
	seen := make(map[int]struct{}, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.Order]; ok {
			sl.ReportError(entries, "exercises", "Exercises", tagUniqueOrder, "")
			return
		}
		seen[e.Order] = struct{}{}
	}
}

func logReferenceValidation(sl validator.StructLevel) {
	req := sl.Current().Interface().(CreateWorkoutLogRequest)
	hasSchedule := req.ScheduledWorkoutID != nil && *req.ScheduledWorkoutID != ""
	hasPlan := req.WorkoutPlanID != nil && *req.WorkoutPlanID != ""
	switch {
	case !hasSchedule && !hasPlan:
		sl.ReportError(req.ScheduledWorkoutID, "scheduledWorkoutId", "ScheduledWorkoutID", tagMissingReference, "")
	case hasSchedule && hasPlan:
		sl.ReportError(req.ScheduledWorkoutID, "scheduledWorkoutId", "ScheduledWorkoutID", tagDoubledReference, "")
	}
}

// validateRequest runs the registered rules and converts failures into a *errorvalues.ValidationError.
func validateRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return errors.New("validation unexpected error: " + err.Error())
	}
	fieldErrors := make([]errorvalues.FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fieldErrors = append(fieldErrors, errorvalues.FieldError{
			Field:   fieldPath(fe.Namespace()),
			Message: fieldMessage(fe),
		})
	}
	return errorvalues.NewValidationError(errorvalues.MsgValidationFailed, fieldErrors...)
}

// fieldPath turns "CreateWorkoutPlanRequest.exercises[1].sets" into "exercises.1.sets".
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		namespace = rest
	}
	return indexExpr.ReplaceAllString(namespace, ".$1")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case tagUniqueOrder:
		return msgUniqueOrder
	case tagMissingReference:
		return msgMissingReference
	case tagDoubledReference:
		return msgDoubledReference
	}
	field := fe.Field()
	if msg, ok := formatMessages[field]; ok {
		return msg
	}
	label, ok := fieldLabels[field]
	if !ok {
		label = field
	}
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "gt":
		return label + " must be a positive number"
	case "oneof":
		return "Invalid " + strings.ToLower(label) + ". Must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	case "min":
		switch fe.Kind() {
		case reflect.Slice:
			return "At least one exercise is required"
		case reflect.String:
			return label + " must be at least " + fe.Param() + " characters long"
		}
		return label + " must be at least " + fe.Param()
	case "max":
		switch fe.Kind() {
		case reflect.Slice:
			root, _, _ := strings.Cut(fe.Namespace(), ".")
			return "Maximum " + fe.Param() + " exercises per " + exercisesNouns[root]
		case reflect.String:
			return label + " must not exceed " + fe.Param() + " characters"
		}
		return label + " must not exceed " + fe.Param()
	}
	return label + " is invalid"
}

// parseFilterDate accepts RFC 3339 or YYYY-MM-DD. A bare date used as an upper bound covers the whole day.
func parseFilterDate(value string, upper bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(dateOnlyLayout, value)
	if err != nil {
		return time.Time{}, err
	}
	if upper {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}

// normalizeTime zero-pads a validated H:MM value.
func normalizeTime(value string) string {
	t, err := time.Parse(scheduledTimeLayout, value)
	if err != nil {
		return value
	}
	return t.Format(scheduledTimeLayout)
}
