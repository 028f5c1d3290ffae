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
package model

import (
	"strings"
)

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
	RoleDriver   = "driver"
	RoleSupport  = "support"
)

// User is a platform account as listed by the admin console.
type User struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role"`
	IsActive  bool   `json:"isActive"`
	// CreatedAt is kept as received (ISO-8601); it is parsed when the
	// list is sorted or filtered by date.
	CreatedAt string `json:"createdAt"`
}

// FullName joins first and last name with a single space.
func FullName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}

func (u *User) FullName() string {
	return FullName(u.FirstName, u.LastName)
}
