package gleam3d

import "math"

// Shade computes the linear color of a surface point under the given lights.
// Contributions are summed, never averaged: independent light sources
// superpose. Gamma correction is not applied here; the renderer applies it
// once after accumulation.
//
// The model is Lambertian diffuse plus a Blinn-Phong specular lobe, with the
// material's metallic factor shifting energy from the diffuse term into a
// tinted specular term. viewDir points from the surface toward the eye.
func Shade(point Point3d, normal, viewDir Vector3, mat Material, lights []Light) Color {
	mat = mat.Clamped()
	n := normal.Normalized()
	v := viewDir.Normalized()

	total := Color{}
	for _, light := range lights {
		switch lt := light.(type) {
		case AmbientLight:
			irradiance := lt.Color
			if lt.Lookup != nil {
				irradiance = irradiance.Mul(lt.Lookup(n, v))
			}
			total = total.Add(irradiance.Mul(mat.Color))

		case DirectionalLight:
			total = total.Add(surfaceResponse(n, v, lt.Direction, mat).Mul(lt.Color))

		case PointLight:
			toLight := lt.Position.Sub(point)
			dist := toLight.Length()
			if dist == 0 {
				// Surface point coincides with the emitter: full attenuation
				// clamp, direction degenerates to the normal.
				toLight = n.Scale(lt.Radius)
				dist = lt.Radius
			}
			dir := toLight.Scale(1 / dist)

			// Inverse-square falloff with the denominator clamped to the
			// emitter radius squared, so the contribution is bounded as
			// dist approaches zero.
			r2 := lt.Radius * lt.Radius
			atten := r2 / math.Max(dist*dist, r2)

			contrib := surfaceResponse(n, v, dir, mat).Mul(lt.Color).Scale(atten)
			total = total.Add(contrib)
		}
	}
	return total
}

// surfaceResponse is the diffuse+specular reflectance for a single light
// direction. lightDir points from the surface toward the light. Back-facing
// light contributes nothing.
func surfaceResponse(n, v, lightDir Vector3, mat Material) Color {
	ndotl := n.Dot(lightDir)
	if ndotl <= 0 {
		return Color{}
	}

	diffuse := mat.Color.Scale(ndotl * (1 - mat.Metallic))

	half := lightDir.Add(v).Normalized()
	ndoth := math.Max(0, n.Dot(half))
	spec := math.Pow(ndoth, mat.shininess()) * ndotl
	specular := mat.specularColor().Scale(spec)

	return diffuse.Add(specular)
}
