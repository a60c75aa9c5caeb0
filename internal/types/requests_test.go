package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRequestValidate_Valid(t *testing.T) {
	req := GenerateRequest{UserInfo: "some career text", TargetRole: "Engineer"}

	assert.NoError(t, req.Validate())
}

func TestGenerateRequestValidate_EmptyUserInfo(t *testing.T) {
	req := GenerateRequest{TargetRole: "Engineer"}

	assert.Error(t, req.Validate())
}

func TestGenerateRequestValidate_UserInfoTooLong(t *testing.T) {
	req := GenerateRequest{UserInfo: strings.Repeat("a", MaxUserInfoLength+1)}

	assert.Error(t, req.Validate())
}

func TestGenerateRequestValidate_RoleTooLong(t *testing.T) {
	req := GenerateRequest{UserInfo: "text", TargetRole: strings.Repeat("r", 201)}

	assert.Error(t, req.Validate())
}

func TestBatchGenerateRequestValidate_Valid(t *testing.T) {
	req := BatchGenerateRequest{Items: []GenerateRequest{{UserInfo: "text"}}}

	assert.NoError(t, req.Validate())
}

func TestBatchGenerateRequestValidate_Empty(t *testing.T) {
	req := BatchGenerateRequest{}

	assert.Error(t, req.Validate())
}

func TestBatchGenerateRequestValidate_TooManyItems(t *testing.T) {
	items := make([]GenerateRequest, MaxBatchSize+1)
	for i := range items {
		items[i] = GenerateRequest{UserInfo: "text"}
	}

	req := BatchGenerateRequest{Items: items}

	assert.Error(t, req.Validate())
}

func TestBatchGenerateRequestValidate_DiveValidatesItems(t *testing.T) {
	req := BatchGenerateRequest{Items: []GenerateRequest{{UserInfo: ""}}}

	assert.Error(t, req.Validate())
}
