package device

// BufferUsage mirrors the teacher's BufferUsage: a thin rename of the
// GL draw-usage hint so callers don't need the raw enum.
type BufferUsage Enum

const (
	UsageStatic  BufferUsage = BufferUsage(STATIC_DRAW)
	UsageDynamic BufferUsage = BufferUsage(DYNAMIC_DRAW)
	UsageStream  BufferUsage = BufferUsage(STREAM_DRAW)
)

// AttribLayout describes one vertex attribute's binding to a VBO,
// directly adapted from the teacher's AttribLayout struct.
type AttribLayout struct {
	// Type is the component type: FLOAT, UNSIGNED_BYTE, etc.
	Type Enum
	// Size is the number of components per vertex (1-4).
	Size int32
	// Normalized requests integer-to-float normalization for integer
	// Type values.
	Normalized bool
	// Stride is the byte offset between consecutive vertices; 0 means
	// tightly packed.
	Stride int32
	// Offset is the byte offset of this attribute within one vertex.
	Offset int
}

// NewVertexBuffer uploads data as a new VBO with the given usage hint.
func (d *Device) NewVertexBuffer(data []byte, usage BufferUsage) *VBO {
	glID := d.driver.GenBuffers(1)[0]
	d.bindBuffer(ARRAY_BUFFER, glID)
	d.driver.BufferData(ARRAY_BUFFER, len(data), data, Enum(usage))
	b := &VBO{id: VBOID(d.reg.alloc()), glID: glID}
	d.reg.vbos[b.id] = b
	return b
}

// NewIndexBuffer uploads data as a new element array buffer.
func (d *Device) NewIndexBuffer(data []byte, usage BufferUsage) *IBO {
	glID := d.driver.GenBuffers(1)[0]
	d.bindBuffer(ELEMENT_ARRAY_BUFFER, glID)
	d.driver.BufferData(ELEMENT_ARRAY_BUFFER, len(data), data, Enum(usage))
	b := &IBO{id: IBOID(d.reg.alloc()), glID: glID}
	d.reg.ibos[b.id] = b
	return b
}

// DeleteVertexBuffer deletes vbo's underlying GL object.
func (d *Device) DeleteVertexBuffer(vbo *VBO) {
	delete(d.reg.vbos, vbo.id)
	d.driver.DeleteBuffers([]uint32{vbo.glID})
}

// DeleteIndexBuffer deletes ibo's underlying GL object.
func (d *Device) DeleteIndexBuffer(ibo *IBO) {
	delete(d.reg.ibos, ibo.id)
	d.driver.DeleteBuffers([]uint32{ibo.glID})
}

// NewVAO creates a new vertex array object.
func (d *Device) NewVAO() *VAO {
	glID := d.driver.GenVertexArrays(1)[0]
	v := &VAO{id: VAOID(d.reg.alloc()), glID: glID}
	d.reg.vaos[v.id] = v
	return v
}

// DeleteVAO deletes vao's underlying GL object.
func (d *Device) DeleteVAO(vao *VAO) {
	delete(d.reg.vaos, vao.id)
	d.driver.DeleteVertexArrays([]uint32{vao.glID})
}

// AddAttribute binds vbo's data to vao at attribute index index using
// layout, the teacher's AddAttribute generalized to take an explicit
// VAO/VBO pair instead of an implicit currently-bound one.
func (d *Device) AddAttribute(vao *VAO, vbo *VBO, index uint32, layout AttribLayout) {
	d.bindVAO(vao.glID)
	d.bindBuffer(ARRAY_BUFFER, vbo.glID)
	d.driver.EnableVertexAttribArray(index)
	d.driver.VertexAttribPointer(index, layout.Size, layout.Type, layout.Normalized, layout.Stride, layout.Offset)
}

// BindVAO binds vao as current, going through the state cache.
func (d *Device) BindVAO(vao *VAO) {
	d.bindVAO(vao.glID)
}

// BindIndexBuffer binds ibo as the current element array buffer,
// typically immediately before a DrawElements call.
func (d *Device) BindIndexBuffer(ibo *IBO) {
	d.bindBuffer(ELEMENT_ARRAY_BUFFER, ibo.glID)
}

// Draw issues a DrawArrays call for count vertices of the given
// primitive kind, starting at first.
func (d *Device) Draw(mode Enum, first, count int32) {
	d.driver.DrawArrays(mode, first, count)
}

// DrawIndexed issues a DrawElements call for count indices of the
// given element type (typically UNSIGNED_SHORT or UNSIGNED_INT).
func (d *Device) DrawIndexed(mode Enum, count int32, elemType Enum, byteOffset int) {
	d.driver.DrawElements(mode, count, elemType, byteOffset)
}
