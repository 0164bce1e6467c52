package dto_test

import (
	"strings"
	"testing"

	"dinevibe/shared/dto"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name          string
		filter        dto.Filter
		expectedWhere string
		expectedArgs  map[string]any
	}{
		{
			name: "eq with table prefix",
			filter: dto.Filter{
				Field:    "status",
				Operator: dto.FilterOperatorEq,
				Value:    "pending",
				Table:    "reservations",
			},
			expectedWhere: "reservations.status = :status",
			expectedArgs:  map[string]any{"status": "pending"},
		},
		{
			name: "eq without table",
			filter: dto.Filter{
				Field:    "id",
				Operator: dto.FilterOperatorEq,
				Value:    "some-id",
			},
			expectedWhere: "id = :id",
			expectedArgs:  map[string]any{"id": "some-id"},
		},
		{
			name: "like wraps value in wildcards",
			filter: dto.Filter{
				Field:    "location",
				Operator: dto.FilterOperatorLike,
				Value:    "jakarta",
				Table:    "restaurants",
			},
			expectedWhere: "LOWER(restaurants.location) LIKE LOWER(:location)",
			expectedArgs:  map[string]any{"location": "%jakarta%"},
		},
		{
			name: "custom arg name",
			filter: dto.Filter{
				ArgName:  "search_name",
				Field:    "name",
				Operator: dto.FilterOperatorLike,
				Value:    "warung",
				Table:    "restaurants",
			},
			expectedWhere: "LOWER(restaurants.name) LIKE LOWER(:search_name)",
			expectedArgs:  map[string]any{"search_name": "%warung%"},
		},
		{
			name: "greater equal",
			filter: dto.Filter{
				Field:    "seating_capacity",
				Operator: dto.FilterOperatorGreaterEq,
				Value:    10,
				Table:    "restaurants",
			},
			expectedWhere: "restaurants.seating_capacity >= :seating_capacity",
			expectedArgs:  map[string]any{"seating_capacity": 10},
		},
		{
			name: "is null takes no args",
			filter: dto.Filter{
				Field:    "restaurant_id",
				Operator: dto.FilterIsNull,
				Table:    "reservations",
			},
			expectedWhere: "reservations.restaurant_id IS NULL",
			expectedArgs:  map[string]any{},
		},
		{
			name: "unknown operator yields empty clause",
			filter: dto.Filter{
				Field:    "id",
				Operator: "between",
				Value:    "x",
			},
			expectedWhere: "",
			expectedArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			if where != tt.expectedWhere {
				t.Errorf("expected where %q, got %q", tt.expectedWhere, where)
			}

			if len(args) != len(tt.expectedArgs) {
				t.Fatalf("expected %d args, got %d", len(tt.expectedArgs), len(args))
			}

			for key, expected := range tt.expectedArgs {
				if args[key] != expected {
					t.Errorf("expected arg %s to be %v, got %v", key, expected, args[key])
				}
			}
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	t.Run("empty group yields empty clause", func(t *testing.T) {
		group := dto.FilterGroup{}

		where, args := group.GetWhereClause()

		if where != "" {
			t.Errorf("expected empty where, got %q", where)
		}

		if len(args) != 0 {
			t.Errorf("expected no args, got %v", args)
		}
	})

	t.Run("missing operator defaults to AND", func(t *testing.T) {
		group := dto.FilterGroup{
			Filters: []any{
				dto.Filter{Field: "role", Operator: dto.FilterOperatorEq, Value: "admin"},
				dto.Filter{Field: "is_admin", Operator: dto.FilterOperatorEq, Value: true},
			},
		}

		where, args := group.GetWhereClause()

		if !strings.Contains(where, " AND ") {
			t.Errorf("expected AND between clauses, got %q", where)
		}

		if len(args) != 2 {
			t.Errorf("expected 2 args, got %d", len(args))
		}
	})

	t.Run("or group", func(t *testing.T) {
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorOr,
			Filters: []any{
				dto.Filter{ArgName: "search_name", Field: "name", Operator: dto.FilterOperatorLike, Value: "sate"},
				dto.Filter{ArgName: "search_cuisine", Field: "cuisine", Operator: dto.FilterOperatorLike, Value: "sate"},
			},
		}

		where, _ := group.GetWhereClause()

		if !strings.Contains(where, " OR ") {
			t.Errorf("expected OR between clauses, got %q", where)
		}
	})

	t.Run("nested groups are parenthesized", func(t *testing.T) {
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorAnd,
			Filters: []any{
				dto.Filter{Field: "is_approved", Operator: dto.FilterOperatorEq, Value: true, Table: "restaurants"},
				dto.FilterGroup{
					Operator: dto.FilterGroupOperatorOr,
					Filters: []any{
						dto.Filter{ArgName: "search_name", Field: "name", Operator: dto.FilterOperatorLike, Value: "sate"},
						dto.Filter{ArgName: "search_location", Field: "location", Operator: dto.FilterOperatorLike, Value: "sate"},
					},
				},
			},
		}

		where, args := group.GetWhereClause()

		if strings.Count(where, "(") < 2 {
			t.Errorf("expected nested parentheses, got %q", where)
		}

		if len(args) != 3 {
			t.Errorf("expected 3 args, got %d", len(args))
		}
	})
}
