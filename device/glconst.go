package device

// Enum mirrors a raw OpenGL enum value. Kept as a distinct type from the
// concrete driver's own enum type so the core package never needs to
// import an actual GL binding.
type Enum uint32

// A narrow set of GL tokens the core needs to name explicitly: texture
// targets, buffer targets/usages, framebuffer attachments, pixel
// transfer parameters, and blend/depth state. Values are the standard
// OpenGL / OpenGL ES registry constants.
const (
	TEXTURE_2D           Enum = 0x0DE1
	TEXTURE_2D_ARRAY     Enum = 0x8C1A
	TEXTURE_RECTANGLE    Enum = 0x84F5
	TEXTURE_EXTERNAL_OES Enum = 0x8D65
	TEXTURE0             Enum = 0x84C0

	ARRAY_BUFFER         Enum = 0x8892
	ELEMENT_ARRAY_BUFFER Enum = 0x8893
	PIXEL_PACK_BUFFER    Enum = 0x88EB
	PIXEL_UNPACK_BUFFER  Enum = 0x88EC

	STATIC_DRAW  Enum = 0x88E4
	DYNAMIC_DRAW Enum = 0x88E8
	STREAM_DRAW  Enum = 0x88E0
	STREAM_READ  Enum = 0x88E1

	READ_ONLY  Enum = 0x88B8
	WRITE_ONLY Enum = 0x88B9
	READ_WRITE Enum = 0x88BA

	MAP_READ_BIT             Enum = 0x0001
	MAP_WRITE_BIT            Enum = 0x0002
	MAP_INVALIDATE_RANGE_BIT Enum = 0x0004

	FRAMEBUFFER              Enum = 0x8D40
	READ_FRAMEBUFFER         Enum = 0x8CA8
	DRAW_FRAMEBUFFER         Enum = 0x8CA9
	READ_FRAMEBUFFER_BINDING Enum = 0x8CAA
	DRAW_FRAMEBUFFER_BINDING Enum = 0x8CA6
	FRAMEBUFFER_COMPLETE     Enum = 0x8CD5
	FRAMEBUFFER_UNSUPPORTED Enum = 0x8CDD
	COLOR_ATTACHMENT0        Enum = 0x8CE0
	DEPTH_ATTACHMENT         Enum = 0x8D00

	RENDERBUFFER      Enum = 0x8D41
	DEPTH_COMPONENT24 Enum = 0x81A6

	RGBA8        Enum = 0x8058
	RGBA32F      Enum = 0x8814
	RGBA32I      Enum = 0x8D82
	RGBA_INTEGER Enum = 0x8D99
	RGBA         Enum = 0x1908
	RED          Enum = 0x1903
	RG           Enum = 0x8227
	R8           Enum = 0x8229
	R16          Enum = 0x822A
	R16UI        Enum = 0x8234
	RG8          Enum = 0x822B
	RG16         Enum = 0x822C
	BGRA_EXT     Enum = 0x80E1
	BGRA8_EXT    Enum = 0x93A1

	UNSIGNED_BYTE  Enum = 0x1401
	UNSIGNED_SHORT Enum = 0x1403
	UNSIGNED_INT   Enum = 0x1405
	FLOAT          Enum = 0x1406
	INT            Enum = 0x1404

	TEXTURE_MAG_FILTER   Enum = 0x2800
	TEXTURE_MIN_FILTER   Enum = 0x2801
	TEXTURE_WRAP_S       Enum = 0x2802
	TEXTURE_WRAP_T       Enum = 0x2803
	NEAREST              Enum = 0x2600
	LINEAR               Enum = 0x2601
	LINEAR_MIPMAP_LINEAR Enum = 0x2703
	CLAMP_TO_EDGE        Enum = 0x812F

	DEPTH_TEST    Enum = 0x0B71
	BLEND         Enum = 0x0BE2
	SCISSOR_TEST  Enum = 0x0C11
	STENCIL_TEST  Enum = 0x0B90
	COLOR_BUFFER_BIT Enum = 0x4000
	DEPTH_BUFFER_BIT Enum = 0x0100

	FUNC_ADD Enum = 0x8006
	MIN_EQ   Enum = 0x8007
	MAX_EQ   Enum = 0x8008

	ZERO                 Enum = 0
	ONE                  Enum = 1
	SRC_ALPHA            Enum = 0x0302
	ONE_MINUS_SRC_ALPHA  Enum = 0x0303
	SRC_COLOR            Enum = 0x0300
	ONE_MINUS_SRC_COLOR  Enum = 0x0301
	ONE_MINUS_DST_ALPHA  Enum = 0x0305
	CONSTANT_COLOR       Enum = 0x8001
	ONE_MINUS_SRC1_COLOR Enum = 0x88FA

	DEPTH_WRITEMASK Enum = 0x0B72
	LESS            Enum = 0x0201
	LEQUAL          Enum = 0x0203

	MULTIPLY_KHR        Enum = 0x9294
	SCREEN_KHR          Enum = 0x9295
	OVERLAY_KHR         Enum = 0x9296
	DARKEN_KHR          Enum = 0x9297
	LIGHTEN_KHR         Enum = 0x9298
	COLORDODGE_KHR      Enum = 0x9299
	COLORBURN_KHR       Enum = 0x929A
	HARDLIGHT_KHR       Enum = 0x929B
	SOFTLIGHT_KHR       Enum = 0x929C
	DIFFERENCE_KHR      Enum = 0x929E
	EXCLUSION_KHR       Enum = 0x92A0
	HSL_HUE_KHR         Enum = 0x92AD
	HSL_SATURATION_KHR  Enum = 0x92AE
	HSL_COLOR_KHR       Enum = 0x92AF
	HSL_LUMINOSITY_KHR  Enum = 0x92B0

	DEBUG_OUTPUT                   Enum = 0x92E0
	DEBUG_TYPE_ERROR               Enum = 0x824C
	DEBUG_TYPE_DEPRECATED_BEHAVIOR Enum = 0x824D
	DEBUG_TYPE_UNDEFINED_BEHAVIOR  Enum = 0x824E
	DEBUG_TYPE_PORTABILITY         Enum = 0x824F
	DEBUG_TYPE_PERFORMANCE         Enum = 0x8250
	DEBUG_TYPE_OTHER               Enum = 0x8251
	DEBUG_TYPE_MARKER              Enum = 0x8268
	DEBUG_TYPE_PUSH_GROUP          Enum = 0x8269
	DEBUG_TYPE_POP_GROUP           Enum = 0x826A
	DEBUG_SEVERITY_HIGH            Enum = 0x9146
	DEBUG_SEVERITY_MEDIUM          Enum = 0x9147
	DEBUG_SEVERITY_LOW             Enum = 0x9148
	DEBUG_SEVERITY_NOTIFICATION    Enum = 0x826B

	PROGRAM_BINARY_RETRIEVABLE_HINT Enum = 0x8257
	LINK_STATUS                     Enum = 0x8B82
	COMPILE_STATUS                  Enum = 0x8B81
	VALIDATE_STATUS                 Enum = 0x8B83
	VERTEX_SHADER                    Enum = 0x8B31
	FRAGMENT_SHADER                  Enum = 0x8B30

	MAX_TEXTURE_SIZE         Enum = 0x0D33
	MAX_ARRAY_TEXTURE_LAYERS Enum = 0x88FF
	NUM_EXTENSIONS           Enum = 0x821D
	EXTENSIONS               Enum = 0x1F03
	RENDERER                 Enum = 0x1F01
	VERSION_STR              Enum = 0x1F02

	UNPACK_ROW_LENGTH Enum = 0x0CF2
	UNPACK_ALIGNMENT  Enum = 0x0CF5
	PACK_ALIGNMENT    Enum = 0x0D05

	TRIANGLES Enum = 0x0004
	POINTS    Enum = 0x0000
	LINES     Enum = 0x0001

	SHADER_PIXEL_LOCAL_STORAGE_EXT Enum = 0x8F64
)
