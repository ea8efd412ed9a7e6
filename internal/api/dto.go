// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"github.com/taibuivan/tutorbook/internal/core/person"
	"github.com/taibuivan/tutorbook/internal/core/tuition"
	"github.com/taibuivan/tutorbook/pkg/slice"
)

// # Response Shapes

// PersonResponse is a person as rendered by the view.
type PersonResponse struct {
	Index       int            `json:"index,omitempty"`
	ID          string         `json:"id"`
	Category    string         `json:"category"`
	Name        string         `json:"name"`
	Phone       string         `json:"phone"`
	Email       string         `json:"email"`
	Address     string         `json:"address"`
	Tags        []string       `json:"tags"`
	Remark      string         `json:"remark,omitempty"`
	ParentID    string         `json:"parentId,omitempty"`
	Class       *ClassResponse `json:"class,omitempty"`
	ChildrenIDs []string       `json:"childrenIds,omitempty"`
}

// ClassResponse is a tuition class as rendered by the view.
type ClassResponse struct {
	ClassID string `json:"classId"`
	Day     string `json:"day"`
	Time    string `json:"time"`
}

// CommandRequest is the body of POST /api/v1/commands.
type CommandRequest struct {
	Command string `json:"command"`
}

func newPersonResponse(p person.Person) PersonResponse {
	response := PersonResponse{
		ID:       p.ID.String(),
		Category: p.Category.String(),
		Name:     p.Name.String(),
		Phone:    p.Phone.String(),
		Email:    p.Email.String(),
		Address:  p.Address.String(),
		Tags:     p.TagNames(),
		Remark:   p.Remark.String(),
	}
	if response.Tags == nil {
		response.Tags = []string{}
	}
	if p.HasParent() {
		response.ParentID = p.ParentID.String()
	}
	if p.HasClass() {
		response.Class = &ClassResponse{
			ClassID: p.Class.ID.String(),
			Day:     p.Class.Day.String(),
			Time:    p.Class.Time.String(),
		}
	}
	if len(p.ChildrenIDs) > 0 {
		response.ChildrenIDs = slice.Map(p.ChildrenIDs, person.ID.String)
	}
	return response
}

func newIndexedPersonResponses(persons []person.Person) []PersonResponse {
	responses := make([]PersonResponse, len(persons))
	for i, p := range persons {
		responses[i] = newPersonResponse(p)
		responses[i].Index = i + 1
	}
	return responses
}

func newClassResponse(c tuition.Class) ClassResponse {
	return ClassResponse{ClassID: c.ID.String(), Day: c.Day.String(), Time: c.Time.String()}
}
