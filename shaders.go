package gltut

// Uniform, attribute and output names shared by the shader sources and the
// renderer.
const (
	AttribPosition = "position"
	AttribNormal   = "normal"
	FragData       = "fragment"

	UniformProjection   = "projection"
	UniformModelView    = "modelView"
	UniformNormalMatrix = "normalMatrix"
	UniformLightPos     = "Lpos"
	UniformLightAmb     = "Lamb"
	UniformLightDiff    = "Ldiff"
	UniformLightSpec    = "Lspec"

	BlockMaterial = "Material"
)

// MaterialBinding is the uniform buffer binding point of the Material block.
const MaterialBinding = 0

// VertexShader is the built-in Phong lighting vertex shader, used when no
// point.vert file is available.
//
var VertexShader = []byte(`#version 150 core
uniform mat4 modelView;
uniform mat4 projection;
uniform mat3 normalMatrix;
uniform vec4 Lpos;
uniform vec3 Lamb;
uniform vec3 Ldiff;
uniform vec3 Lspec;

layout (std140) uniform Material
{
	vec3 Kamb;
	vec3 Kdiff;
	vec3 Kspec;
	float Kshi;
};

in vec4 position;
in vec3 normal;

out vec3 Iamb;
out vec3 Idiff;
out vec3 Ispec;

void main()
{
	vec4 P = modelView * position;
	vec3 N = normalize(normalMatrix * normal);
	vec3 L = normalize((Lpos * P.w - P * Lpos.w).xyz);
	vec3 V = -normalize(P.xyz);
	vec3 H = normalize(L + V);

	Iamb = Kamb * Lamb;
	Idiff = max(dot(N, L), 0.0) * Kdiff * Ldiff;
	Ispec = pow(max(dot(N, H), 0.0), Kshi) * Kspec * Lspec;

	gl_Position = projection * P;
}
`)

// FragmentShader is the built-in fragment shader matching VertexShader.
var FragmentShader = []byte(`#version 150 core
in vec3 Iamb;
in vec3 Idiff;
in vec3 Ispec;

out vec4 fragment;

void main()
{
	fragment = vec4(Iamb + Idiff + Ispec, 1.0);
}
`)
