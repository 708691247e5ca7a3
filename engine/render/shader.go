package render

import (
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// Shader is a compiled and linked GLSL program. Uniform locations are
// looked up lazily and cached.
type Shader struct {
	program  uint32
	uniforms map[string]int32
}

func NewShader(vertexSource, fragmentSource string) (*Shader, error) {
	vertex, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return nil, errors.Wrap(err, "vertex shader")
	}
	fragment, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, errors.Wrap(err, "fragment shader")
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)
	gl.LinkProgram(program)

	var success int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &success)
	if success == gl.FALSE {
		return nil, errors.Errorf("link program: %s", infoLog(program, gl.GetProgramiv, gl.GetProgramInfoLog))
	}

	gl.DeleteShader(vertex)
	gl.DeleteShader(fragment)

	return &Shader{
		program:  program,
		uniforms: map[string]int32{},
	}, nil
}

func (s *Shader) Begin() {
	gl.UseProgram(s.program)
}

func (s *Shader) End() {
	gl.UseProgram(0)
}

func (s *Shader) SetUniformMat4(name string, value mgl32.Mat4) {
	gl.UniformMatrix4fv(s.uniformLocation(name), 1, false, &value[0])
}

func (s *Shader) uniformLocation(name string) int32 {
	if location, ok := s.uniforms[name]; ok {
		return location
	}
	location := gl.GetUniformLocation(s.program, gl.Str(name+"\x00"))
	s.uniforms[name] = location
	return location
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	sources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, sources, nil)
	free()
	gl.CompileShader(shader)

	var success int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &success)
	if success == gl.FALSE {
		return 0, errors.Errorf("compile: %s", infoLog(shader, gl.GetShaderiv, gl.GetShaderInfoLog))
	}
	return shader, nil
}

func infoLog(object uint32, getiv func(uint32, uint32, *int32), getLog func(uint32, int32, *int32, *uint8)) string {
	var logLength int32
	getiv(object, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return "no info log"
	}
	logText := strings.Repeat("\x00", int(logLength+1))
	getLog(object, logLength, nil, gl.Str(logText))
	return strings.TrimRight(logText, "\x00")
}
