// Copyright (c) 2025, Forge Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package recipe

import (
	"errors"
	"testing"

	forgeerrors "github.com/mchmarny/forge/pkg/errors"
)

func TestItem_String(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want string
	}{
		{name: "simple", item: NewItem("Wood Plank", 4), want: "Wood Plank x4"},
		{name: "single unit", item: NewItem("Log", 1), want: "Log x1"},
		{name: "zero quantity", item: NewItem("Stick", 0), want: "Stick x0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRecipe_Validate(t *testing.T) {
	tests := []struct {
		name    string
		recipe  Recipe
		wantErr bool
	}{
		{
			name: "valid recipe",
			recipe: NewRecipe(NewItem("Wood Plank", 4),
				[]Item{NewItem("Log", 1)}),
			wantErr: false,
		},
		{
			name: "valid recipe with byproducts",
			recipe: NewRecipe(NewItem("Cake", 1),
				[]Item{NewItem("Milk Bucket", 3)},
				NewItem("Bucket", 3)),
			wantErr: false,
		},
		{
			name:    "empty product name",
			recipe:  NewRecipe(NewItem("", 4), []Item{NewItem("Log", 1)}),
			wantErr: true,
		},
		{
			name:    "zero batch size",
			recipe:  NewRecipe(NewItem("Wood Plank", 0), []Item{NewItem("Log", 1)}),
			wantErr: true,
		},
		{
			name:    "negative batch size",
			recipe:  NewRecipe(NewItem("Wood Plank", -4), []Item{NewItem("Log", 1)}),
			wantErr: true,
		},
		{
			name:    "empty ingredient name",
			recipe:  NewRecipe(NewItem("Wood Plank", 4), []Item{NewItem("", 1)}),
			wantErr: true,
		},
		{
			name:    "negative ingredient quantity",
			recipe:  NewRecipe(NewItem("Wood Plank", 4), []Item{NewItem("Log", -1)}),
			wantErr: true,
		},
		{
			name: "negative byproduct quantity",
			recipe: NewRecipe(NewItem("Cake", 1),
				[]Item{NewItem("Milk Bucket", 3)},
				NewItem("Bucket", -3)),
			wantErr: true,
		},
		{
			name:    "no ingredients is allowed",
			recipe:  NewRecipe(NewItem("Air", 1), nil),
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.recipe.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}

			if err != nil {
				var structured *forgeerrors.StructuredError
				if !errors.As(err, &structured) {
					t.Fatalf("Validate() error is not a StructuredError: %v", err)
				}
				if structured.Code != forgeerrors.ErrCodeInvalidRecipe {
					t.Errorf("error code = %s, want %s", structured.Code, forgeerrors.ErrCodeInvalidRecipe)
				}
			}
		})
	}
}

func TestRecipe_BatchSize(t *testing.T) {
	r := NewRecipe(NewItem("Wood Plank", 4), []Item{NewItem("Log", 1)})
	if got := r.BatchSize(); got != 4 {
		t.Errorf("BatchSize() = %d, want 4", got)
	}
}
