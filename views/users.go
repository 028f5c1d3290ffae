// Copyright 2024 Northern.tech AS
//
//    Licensed under the Apache License, Version 2.0 (the "License");
//    you may not use this file except in compliance with the License.
//    You may obtain a copy of the License at
//
//        http://www.apache.org/licenses/LICENSE-2.0
//
//    Unless required by applicable law or agreed to in writing, software
//    distributed under the License is distributed on an "AS IS" BASIS,
//    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//    See the License for the specific language governing permissions and
//    limitations under the License.
package views

import (
	"golang.org/x/text/language"

	"github.com/haulwise/console/model"
	"github.com/haulwise/console/table"
)

const (
	FieldName      table.Field = "name"
	FieldEmail     table.Field = "email"
	FieldPhone     table.Field = "phone"
	FieldRole      table.Field = "role"
	FieldStatus    table.Field = "status"
	FieldCreatedAt table.Field = "createdAt"
)

const (
	FilterStatus    = "status"
	FilterRole      = "role"
	FilterDateRange = "dateRange"

	StatusActive   = "active"
	StatusInactive = "inactive"
)

var userRoles = []string{
	model.RoleAdmin,
	model.RoleCustomer,
	model.RoleDriver,
	model.RoleSupport,
}

func userStatus(u *model.User) string {
	if u.IsActive {
		return StatusActive
	}
	return StatusInactive
}

// NewUserSchema describes the user list: newest accounts first.
func NewUserSchema(lang language.Tag) *table.Schema[model.User] {
	first := table.Text(func(u *model.User) string { return u.FirstName })
	last := table.Text(func(u *model.User) string { return u.LastName })
	email := table.Text(func(u *model.User) string { return u.Email })
	phone := table.Text(func(u *model.User) string { return u.Phone })
	role := table.Text(func(u *model.User) string { return u.Role })
	created := table.Text(func(u *model.User) string { return u.CreatedAt })

	return &table.Schema[model.User]{
		Name: string(model.ViewUsers),
		ID:   func(u *model.User) string { return u.ID },
		Search: []table.TextFunc[model.User]{
			first,
			last,
			table.Text((*model.User).FullName),
			email,
			phone,
			role,
		},
		Filters: map[string]table.Filter[model.User]{
			FilterStatus: table.BoolFilter[model.User]{
				Value: func(u *model.User) bool { return u.IsActive },
				True:  StatusActive,
				False: StatusInactive,
			},
			FilterRole: table.EqualFilter[model.User]{
				Value:   role,
				Options: userRoles,
			},
			FilterDateRange: table.DateRangeFilter[model.User]{Value: created},
		},
		Sorts: map[table.Field]table.SortStrategy[model.User]{
			FieldName:      table.Composite[model.User]{First: first, Second: last},
			FieldEmail:     table.Default[model.User]{Value: email},
			FieldPhone:     table.Default[model.User]{Value: phone},
			FieldRole:      table.Default[model.User]{Value: role},
			FieldStatus:    table.Default[model.User]{Value: table.Text(userStatus)},
			FieldCreatedAt: table.Temporal[model.User]{Value: created},
		},
		DefaultSort: table.SortSpec{Field: FieldCreatedAt, Direction: table.Descending},
		Language:    lang,
	}
}

// SummarizeUsers counts users by status and role.
func SummarizeUsers(users []model.User) model.UserSummary {
	s := model.UserSummary{
		Total:  len(users),
		ByRole: map[string]int{},
	}
	for i := range users {
		if users[i].IsActive {
			s.Active++
		} else {
			s.Inactive++
		}
		if users[i].Role != "" {
			s.ByRole[users[i].Role]++
		}
	}
	return s
}
