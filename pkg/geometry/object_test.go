package geometry

import (
	"testing"

	"github.com/adrianap0607/Diorama/pkg/core"
	"github.com/adrianap0607/Diorama/pkg/material"
)

func TestObject_DispatchMatchesShape(t *testing.T) {
	box := unitBox()
	plane := groundPlane()
	textured := NewTexturedBox(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), material.Black(), quadrantTexture(nil))

	origin := core.NewVec3(0.3, 4, 0.2)
	direction := core.NewVec3(0, -1, 0)

	tests := []struct {
		name   string
		object Object
		shape  Shape
	}{
		{"box", BoxObject(box), box},
		{"textured_box", TexturedBoxObject(textured), textured},
		{"plane", PlaneObject(plane), plane},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.object.Kind.String() != tt.name {
				t.Errorf("Expected kind %s, got %s", tt.name, tt.object.Kind)
			}
			got := tt.object.RayIntersect(origin, direction)
			want := tt.shape.RayIntersect(origin, direction)
			if got != want {
				t.Errorf("Expected %+v, got %+v", want, got)
			}
		})
	}
}

func TestObject_UnknownKindMisses(t *testing.T) {
	hit := Object{Kind: Kind(42)}.RayIntersect(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if hit.Hit {
		t.Error("Expected unknown kind to miss")
	}
	if Kind(42).String() != "unknown" {
		t.Errorf("Expected unknown, got %s", Kind(42))
	}
}

func TestNearestHit(t *testing.T) {
	near := NewBox(core.NewVec3(-1, -1, 0), core.NewVec3(1, 1, 1), material.NewLambertian(core.NewVec3(1, 0, 0)))
	far := NewBox(core.NewVec3(-1, -1, -5), core.NewVec3(1, 1, -4), material.NewLambertian(core.NewVec3(0, 0, 1)))

	objects := []Object{BoxObject(far), BoxObject(near)}

	hit, index := NearestHit(objects, core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	if index != 1 {
		t.Fatalf("Expected nearest index 1, got %d", index)
	}
	if hit.Distance != 4 {
		t.Errorf("Expected distance 4, got %f", hit.Distance)
	}

	_, index = NearestHit(objects, core.NewVec3(0, 5, 5), core.NewVec3(0, 0, -1))
	if index != -1 {
		t.Errorf("Expected no hit, got index %d", index)
	}

	_, index = NearestHit(nil, core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	if index != -1 {
		t.Errorf("Expected no hit on empty scene, got index %d", index)
	}
}

func TestNearestHit_TieKeepsFirst(t *testing.T) {
	a := BoxObject(unitBox())
	b := BoxObject(NewBox(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), material.Black()))

	_, index := NearestHit([]Object{a, b}, core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	if index != 0 {
		t.Errorf("Expected first object on tie, got %d", index)
	}
}
