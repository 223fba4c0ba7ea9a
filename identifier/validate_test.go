package identifier

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "derived", id: New(uuid.NameSpaceDNS).WorkflowID("order-workflow")},
		{name: "known v5", id: "886313e1-3b8a-5372-9b90-0c9aee199e5d"},
		{name: "random v4", id: uuid.NewString(), wantErr: true},
		{name: "v3", id: uuid.NewMD5(uuid.NameSpaceDNS, []byte("python.org")).String(), wantErr: true},
		{name: "no hyphens", id: "886313e13b8a53729b900c9aee199e5d", wantErr: true},
		{name: "urn form", id: "urn:uuid:886313e1-3b8a-5372-9b90-0c9aee199e5d", wantErr: true},
		{name: "misplaced hyphen", id: "886313e13-b8a-5372-9b90-0c9aee199e5d", wantErr: true},
		{name: "non hex", id: "886313e1-3b8a-5372-9b90-0c9aee199e5z", wantErr: true},
		{name: "empty", id: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.id)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidID)
				return
			}
			assert.NoError(t, err)
		})
	}
}
