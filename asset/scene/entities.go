package scene

import "github.com/achilleasa/lxs/types"

// A 4-component RGBA color with each channel in [0, 1].
type Color types.Vec4

// ViewKind selects the projection variant of a View.
type ViewKind uint8

const (
	Perspective ViewKind = iota
	Ortho
)

func (k ViewKind) String() string {
	if k == Ortho {
		return "ortho"
	}
	return "perspective"
}

// View describes a camera. Fields that do not apply to the view kind are
// left zeroed.
type View struct {
	ID   string
	Kind ViewKind

	Near, Far float32
	From, To  types.Vec3

	// Perspective field of view in radians.
	Angle float32

	// Ortho frustum and up vector.
	Left, Right, Bottom, Top float32
	Up                       types.Vec3
}

// Global illumination settings.
type Globals struct {
	Ambient    Color
	Background Color
}

// LightKind selects between omni and spot lights.
type LightKind uint8

const (
	Omni LightKind = iota
	Spot
)

func (k LightKind) String() string {
	if k == Spot {
		return "spot"
	}
	return "omni"
}

// AttenuationTerm identifies one of the light attenuation coefficients.
type AttenuationTerm uint8

const (
	ConstantAttenuation AttenuationTerm = iota
	LinearAttenuation
	QuadraticAttenuation
)

func (a AttenuationTerm) String() string {
	return [...]string{"constant", "linear", "quadratic"}[a]
}

// Attenuation is a single non-zero attenuation coefficient.
type Attenuation struct {
	Term  AttenuationTerm
	Value float32
}

// Light describes an omni or spot light.
type Light struct {
	ID      string
	Enabled bool
	Kind    LightKind

	Location types.Vec4
	Ambient  Color
	Diffuse  Color
	Specular Color

	// Only terms with non-zero values are retained.
	Attenuation []Attenuation

	// Spot light settings; Angle is stored in radians.
	Angle    float32
	Exponent float32
	Target   types.Vec3
}

// Texture is a named texture image reference.
type Texture struct {
	ID   string
	File string
}

// Material describes a phong material.
type Material struct {
	ID        string
	Emission  Color
	Ambient   Color
	Diffuse   Color
	Specular  Color
	Shininess float32
}

// TextureMode selects the texture reference variant.
type TextureMode uint8

const (
	TextureNone TextureMode = iota
	TextureInherit
	TextureNamed
)

// Sentinel texture ids used in documents.
const (
	TextureNoneID    = "none"
	TextureInheritID = "inherit"
)

// TextureRef is a component texture reference. LengthS and LengthT are only
// meaningful for named textures.
type TextureRef struct {
	Mode    TextureMode
	ID      string
	LengthS float32
	LengthT float32
}

func (t TextureRef) String() string {
	switch t.Mode {
	case TextureNone:
		return TextureNoneID
	case TextureInherit:
		return TextureInheritID
	}
	return t.ID
}

// TransformOpKind identifies a transformation step.
type TransformOpKind uint8

const (
	OpTranslate TransformOpKind = iota
	OpScale
	OpRotate
	OpReference
)

// TransformOp is a single step of a transformation list.
type TransformOp struct {
	Kind TransformOpKind

	// Translation offset or scale factors.
	Vec types.Vec3

	// Rotation axis and angle in degrees.
	Axis  types.Axis
	Angle float32

	// Referenced transformation id (OpReference).
	Ref string
}

// Transform is a named, ordered list of transformation steps together with
// the matrix obtained by composing them left-to-right.
type Transform struct {
	ID     string
	Ops    []TransformOp
	Matrix types.Mat4
}

// Keyframe is a single animation control point. Rotations are specified in
// degrees per axis.
type Keyframe struct {
	Instant   float32
	Translate types.Vec3
	Rotate    types.Vec3
	Scale     types.Vec3
}

// Animation is an ordered, non-empty list of keyframes.
type Animation struct {
	ID        string
	Keyframes []Keyframe

	// Name of the easing function used between keyframes.
	Easing string
}

// ChildKind distinguishes component and primitive child references.
type ChildKind uint8

const (
	ChildComponent ChildKind = iota
	ChildPrimitive
)

func (k ChildKind) String() string {
	if k == ChildPrimitive {
		return "primitive"
	}
	return "component"
}

// ChildRef references a component or primitive by id.
type ChildRef struct {
	Kind ChildKind
	ID   string
}

// Component is a scene graph node definition.
type Component struct {
	ID string

	// Transformation steps in document order and their composed matrix.
	Transforms []TransformOp
	Matrix     types.Mat4

	// The material stack. The active index is owned by the scene graph.
	Materials []string

	Texture  TextureRef
	Children []ChildRef

	// Optional animation id; empty if the component is not animated.
	Animation string
}
