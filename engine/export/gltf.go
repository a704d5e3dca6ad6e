package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/memmaker/voxlight/engine/mesh"
	"github.com/memmaker/voxlight/engine/util"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// BuildDocument converts chunk meshes into a glTF document with one node per non-empty chunk.
// Positions are baked into world space; the light values are stored as COLOR_0 in RGBS order.
func BuildDocument(meshes []mesh.ChunkMesh) *gltf.Document {
	doc := gltf.NewDocument()
	for _, cm := range meshes {
		if cm.Mesh == nil || cm.Mesh.IsEmpty() {
			continue
		}
		count := cm.Mesh.VertexCount()
		positions := make([][3]float32, count)
		texCoords := make([][2]float32, count)
		colors := make([][4]float32, count)
		matrix := cm.Chunk.GetMatrix()
		for i := 0; i < count; i++ {
			vertex := cm.Mesh.Vertex(i)
			world := matrix.Mul4x1(vertex.Position.Vec4(1)).Vec3()
			positions[i] = [3]float32(world)
			texCoords[i] = [2]float32(vertex.UV)
			colors[i] = [4]float32(vertex.Light)
		}

		pos := cm.Chunk.Position()
		name := fmt.Sprintf("chunk_%d_%d_%d", pos.X, pos.Y, pos.Z)
		doc.Meshes = append(doc.Meshes, &gltf.Mesh{
			Name: name,
			Primitives: []*gltf.Primitive{{
				Mode: gltf.PrimitiveTriangles,
				Attributes: map[string]uint32{
					"POSITION":   modeler.WritePosition(doc, positions),
					"TEXCOORD_0": modeler.WriteTextureCoord(doc, texCoords),
					"COLOR_0":    modeler.WriteColor(doc, colors),
				},
			}},
		})
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name: name,
			Mesh: gltf.Index(uint32(len(doc.Meshes) - 1)),
		})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(len(doc.Nodes)-1))
	}
	return doc
}

// WriteGLTF saves the meshes to path. A .glb extension selects the binary container,
// anything else writes JSON with the buffers embedded as data URIs.
func WriteGLTF(path string, meshes []mesh.ChunkMesh) error {
	doc := BuildDocument(meshes)
	var err error
	if strings.EqualFold(filepath.Ext(path), ".glb") {
		err = gltf.SaveBinary(doc, path)
	} else {
		for _, buffer := range doc.Buffers {
			buffer.EmbeddedResource()
		}
		err = gltf.Save(doc, path)
	}
	if err != nil {
		return errors.Wrapf(err, "could not write %s", path)
	}
	util.LogIOInfo(fmt.Sprintf("[Export] Wrote %d chunk meshes to %s", len(doc.Meshes), path))
	return nil
}
