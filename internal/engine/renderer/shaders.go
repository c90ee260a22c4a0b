package renderer

const waterVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aColor;
layout (location = 2) in vec3 aNormal;
layout (location = 3) in vec2 aTexCoord;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProjection;

out vec3 vWorldPos;
out vec3 vColor;
out vec3 vNormal;
out vec2 vTexCoord;

void main() {
	vec4 world = uModel * vec4(aPos, 1.0);
	vWorldPos = world.xyz;
	vColor = aColor;
	// The model matrix is a uniform scale, so normals need no inverse transpose.
	vNormal = aNormal;
	vTexCoord = aTexCoord;
	gl_Position = uProjection * uView * world;
}
`

const waterFragmentShader = `
#version 410 core

in vec3 vWorldPos;
in vec3 vColor;
in vec3 vNormal;
in vec2 vTexCoord;

uniform bool uLighting;
uniform float uAmbient;
uniform bool uSunOn;
uniform vec3 uSunDir;
uniform vec3 uSunColor;
uniform bool uPointOn;
uniform vec3 uPointPos;
uniform vec3 uPointColor;
uniform vec3 uEye;

uniform bool uUseTexture;
uniform sampler2D uTexture;
uniform bool uFlat;
uniform vec3 uFlatColor;
uniform bool uGray;

out vec4 FragColor;

vec4 finish(vec3 c) {
	if (uGray) {
		c = vec3(dot(c, vec3(0.299, 0.587, 0.114)));
	}
	return vec4(c, 1.0);
}

vec3 shade(vec3 base, vec3 n, vec3 toLight, vec3 color) {
	float diff = max(dot(n, toLight), 0.0);
	vec3 h = normalize(toLight + normalize(uEye - vWorldPos));
	float spec = pow(max(dot(n, h), 0.0), 32.0) * 0.4;
	return (base * diff + vec3(spec)) * color;
}

void main() {
	if (uFlat) {
		FragColor = finish(uFlatColor);
		return;
	}

	vec3 base = vColor;
	if (uUseTexture) {
		base *= texture(uTexture, vTexCoord).rgb;
	}

	if (!uLighting) {
		FragColor = finish(base);
		return;
	}

	vec3 n = normalize(vNormal);
	vec3 lit = base * uAmbient;
	if (uSunOn) {
		lit += shade(base, n, normalize(uSunDir), uSunColor);
	}
	if (uPointOn) {
		vec3 toLight = uPointPos - vWorldPos;
		float atten = 1.0 / (1.0 + 0.05 * dot(toLight, toLight));
		lit += shade(base, n, normalize(toLight), uPointColor) * atten;
	}
	FragColor = finish(min(lit, vec3(1.0)));
}
`

// sphereVertexShader places one unit-sphere mesh per instance. It feeds the
// water fragment shader, so spheres are lit like the surface.
const sphereVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec3 aOffset;
layout (location = 3) in vec3 aColor;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProjection;

out vec3 vWorldPos;
out vec3 vColor;
out vec3 vNormal;
out vec2 vTexCoord;

void main() {
	vec4 world = uModel * vec4(aOffset + aPos, 1.0);
	vWorldPos = world.xyz;
	vColor = aColor;
	vNormal = aNormal;
	vTexCoord = vec2(0.0);
	gl_Position = uProjection * uView * world;
}
`
