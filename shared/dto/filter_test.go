package dto_test

import (
	"reflect"
	"testing"

	"guestroom/shared/dto"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name: "eq with table prefix",
			filter: dto.Filter{
				Field:    "owner_id",
				Value:    "owner-id",
				Operator: dto.FilterOperatorEq,
				Table:    "room_bookings",
			},
			wantWhere: "room_bookings.owner_id = :owner_id",
			wantArgs:  map[string]any{"owner_id": "owner-id"},
		},
		{
			name: "eq without table",
			filter: dto.Filter{
				Field:    "status",
				Value:    "pending",
				Operator: dto.FilterOperatorEq,
			},
			wantWhere: "status = :status",
			wantArgs:  map[string]any{"status": "pending"},
		},
		{
			name: "like is case insensitive",
			filter: dto.Filter{
				Field:    "city",
				Value:    "bandung",
				Operator: dto.FilterOperatorLike,
				Table:    "houses",
			},
			wantWhere: "LOWER(houses.city) LIKE LOWER(:city) ",
			wantArgs:  map[string]any{"city": "%bandung%"},
		},
		{
			name: "in with slice value",
			filter: dto.Filter{
				Field:    "status",
				Value:    []string{"pending", "confirmed"},
				Operator: dto.FilterOperatorIn,
			},
			wantWhere: "status IN (:status_0, :status_1) ",
			wantArgs:  map[string]any{"status_0": "pending", "status_1": "confirmed"},
		},
		{
			name: "plain query is wrapped in parentheses",
			filter: dto.Filter{
				Operator: dto.FilterPlainQuery,
				Value:    "room_bookings.status IN ('pending', 'confirmed') AND room_bookings.to_date >= CURRENT_DATE",
			},
			wantWhere: "(room_bookings.status IN ('pending', 'confirmed') AND room_bookings.to_date >= CURRENT_DATE)",
			wantArgs:  map[string]any{},
		},
		{
			name: "greater eq",
			filter: dto.Filter{
				Field:    "to_date",
				Value:    "2026-06-10",
				Operator: dto.FilterOperatorGreaterEq,
				Table:    "room_bookings",
			},
			wantWhere: "room_bookings.to_date >= :to_date",
			wantArgs:  map[string]any{"to_date": "2026-06-10"},
		},
		{
			name: "custom arg name",
			filter: dto.Filter{
				ArgName:  "booking_status",
				Field:    "status",
				Value:    "pending",
				Operator: dto.FilterOperatorEq,
			},
			wantWhere: "status = :booking_status",
			wantArgs:  map[string]any{"booking_status": "pending"},
		},
		{
			name: "unknown operator yields empty clause",
			filter: dto.Filter{
				Field:    "status",
				Operator: "between",
			},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			if where != tt.wantWhere {
				t.Errorf("expected where %q, got %q", tt.wantWhere, where)
			}

			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("expected args %+v, got %+v", tt.wantArgs, args)
			}
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    "customer_id",
				Value:    "customer-id",
				Operator: dto.FilterOperatorEq,
				Table:    "room_bookings",
			},
			dto.Filter{
				Operator: dto.FilterPlainQuery,
				Value:    "room_bookings.to_date >= CURRENT_DATE",
			},
		},
	}

	where, args := group.GetWhereClause()

	expected := "(room_bookings.customer_id = :customer_id AND (room_bookings.to_date >= CURRENT_DATE))"
	if where != expected {
		t.Errorf("expected where %q, got %q", expected, where)
	}

	if args["customer_id"] != "customer-id" {
		t.Errorf("expected customer_id arg, got %+v", args)
	}
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{}

	where, args := group.GetWhereClause()

	if where != "" {
		t.Errorf("expected empty where clause, got %q", where)
	}

	if len(args) != 0 {
		t.Errorf("expected no args, got %+v", args)
	}
}

func TestFilterGroup_Nested(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    "owner_id",
				Value:    "owner-id",
				Operator: dto.FilterOperatorEq,
			},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{
						Field:    "status",
						Value:    "pending",
						Operator: dto.FilterOperatorEq,
					},
					dto.Filter{
						ArgName:  "status_confirmed",
						Field:    "status",
						Value:    "confirmed",
						Operator: dto.FilterOperatorEq,
					},
				},
			},
		},
	}

	where, args := group.GetWhereClause()

	expected := "(owner_id = :owner_id AND (status = :status OR status = :status_confirmed))"
	if where != expected {
		t.Errorf("expected where %q, got %q", expected, where)
	}

	if len(args) != 3 {
		t.Errorf("expected 3 args, got %+v", args)
	}
}
