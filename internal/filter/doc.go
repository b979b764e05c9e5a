// Package filter implements the numeric kernels behind the filter nodes.
//
// Every kernel works on premultiplied RGBA buffers (raster.FormatRGBAPremul)
// unless its documentation says otherwise, and honors the buffer origin:
// pixel (x, y) of the logical raster is always addressed through
// Buffer.PixOffset, never through a zero-based index.
//
// Kernels:
//   - Gaussian blur: separable convolution (quality) or triple box blur (fast)
//   - Morphology: separable running max/min
//   - Color matrix and component transfer on straight alpha
//   - Bump-map normals with diffuse and specular lighting
//   - Turbulence (SVG reference Perlin noise)
//   - Displacement lookup
//   - Alpha and luminance extraction
//
// All channel arithmetic clamps to [0, 255].
package filter
