package shared

import (
	"context"
	"crypto/rand"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"dinevibe/shared/cache"
	"dinevibe/shared/constant"
	"dinevibe/shared/dto"
	"dinevibe/shared/timezone"

	"github.com/rs/zerolog/log"
)

var budgetRangePattern = regexp.MustCompile(`^\s*\$?(\d+)\s*-\s*\$?(\d+)\s*$`)

const base36Charset = "0123456789abcdefghijklmnopqrstuvwxyz"

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

func ConvertStringToInt(value string) (int, error) {
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("failed to convert string to int: %w", err)
	}

	return intValue, nil
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// TransformFields converts the fields of a struct into a map of updated fields.
func TransformFields(data interface{}, username string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = username

	return updatedFields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// ParseBudgetRange parses a budget string of the form "$min-$max" (dollar signs
// optional) into its two bounds. ok is false for malformed or empty input, in
// which case callers are expected to skip budget filtering entirely.
func ParseBudgetRange(budget string) (minBudget, maxBudget int, ok bool) {
	matches := budgetRangePattern.FindStringSubmatch(budget)
	if matches == nil {
		return 0, 0, false
	}

	minBudget, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, 0, false
	}

	maxBudget, err = strconv.Atoi(matches[2])
	if err != nil {
		return 0, 0, false
	}

	return minBudget, maxBudget, true
}

// BudgetRangesOverlap reports whether the stored [storedMin, storedMax] interval
// overlaps the queried [queryMin, queryMax] interval.
func BudgetRangesOverlap(storedMin, storedMax, queryMin, queryMax int) bool {
	return storedMin <= queryMax && storedMax >= queryMin
}

func randomBase36(length int) string {
	buf := make([]byte, length)

	if _, err := rand.Read(buf); err != nil {
		log.Error().Err(err).Msg("failed to read random bytes")
	}

	for i, b := range buf {
		buf[i] = base36Charset[int(b)%len(base36Charset)]
	}

	return string(buf)
}

// NewBookingToken returns a human-presentable reservation reference of the form
// "xxxx-xxxx". The fragments are drawn from crypto/rand so the token is also
// unguessable, but it is not meant to be used as an access credential.
func NewBookingToken() string {
	return fmt.Sprintf("%s-%s", randomBase36(4), randomBase36(4))
}

// NewRegistrationCode returns a fresh admin registration code.
func NewRegistrationCode() string {
	return strings.ToUpper(randomBase36(constant.RegistrationCodeLength))
}

func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()

	return fmt.Sprintf("%s:%d:%d:%s:%s:%s:%v", prefix, params.Page, params.Limit, params.SortBy, params.SortDir, where, args)
}

// InvalidateCaches clears every cache entry under the given prefix. Failures are
// logged only; cache invalidation must never fail the calling operation.
func InvalidateCaches(ctx context.Context, c cache.RedisCache, prefix string) {
	if err := c.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
