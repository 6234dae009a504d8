package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBouquetJSONAttachedShayari(t *testing.T) {
	ref := "c-1"
	created := time.Date(2024, 2, 14, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		bouquet Bouquet
		want    any
	}{
		{
			name:    "no attachment renders null",
			bouquet: Bouquet{ID: "b-1", CreatedAt: created},
			want:    nil,
		},
		{
			name:    "unresolved reference renders the id",
			bouquet: Bouquet{ID: "b-1", AttachedShayariID: &ref, CreatedAt: created},
			want:    "c-1",
		},
		{
			name: "resolved reference renders the couplet",
			bouquet: Bouquet{
				ID:                "b-1",
				AttachedShayariID: &ref,
				AttachedShayari:   &Couplet{ID: ref, Content: "two lines", Likes: []string{}},
				CreatedAt:         created,
			},
			want: map[string]any{"_id": "c-1", "content": "two lines"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := json.Marshal(tt.bouquet)
			require.NoError(t, err)

			var out map[string]any
			require.NoError(t, json.Unmarshal(raw, &out))
			require.Contains(t, out, "attachedShayari")
			assert.Equal(t, []any{}, out["flowers"])

			switch want := tt.want.(type) {
			case map[string]any:
				got, ok := out["attachedShayari"].(map[string]any)
				require.True(t, ok)
				for k, v := range want {
					assert.Equal(t, v, got[k])
				}
			default:
				assert.Equal(t, want, out["attachedShayari"])
			}

			var back Bouquet
			require.NoError(t, json.Unmarshal(raw, &back))
			assert.Equal(t, tt.bouquet.ID, back.ID)
			if tt.bouquet.AttachedShayariID == nil {
				assert.Nil(t, back.AttachedShayariID)
			} else {
				require.NotNil(t, back.AttachedShayariID)
				assert.Equal(t, ref, *back.AttachedShayariID)
			}
		})
	}
}

func TestFlowerAndCakeKinds(t *testing.T) {
	assert.True(t, IsValidFlower(FlowerLotus))
	assert.False(t, IsValidFlower("Rose"))
	assert.True(t, IsValidCake(CakeRedVelvet))
	assert.False(t, IsValidCake(""))
}
