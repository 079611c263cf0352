package shaders

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ericroy/fplbase/logging"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// CompileStage compiles one shader stage and returns its GL object handle
func CompileStage(source string, shaderType ShaderType) (uint32, error) {

	shaderId := gl.CreateShader(shaderType.ToGl())
	if shaderId == 0 {
		return 0, fmt.Errorf("failed to create OpenGl shader. OpenGl Error=%d", gl.GetError())
	}

	//Load shader source and compile
	shaderCStr, shaderFree := gl.Strs(source + "\x00")
	defer shaderFree()
	gl.ShaderSource(shaderId, 1, shaderCStr, nil)

	gl.CompileShader(shaderId)
	if err := getShaderCompileErrors(shaderId); err != nil {
		gl.DeleteShader(shaderId)
		return 0, err
	}

	return shaderId, nil
}

// CompileAndLink builds a complete program from vertex and fragment source.
// The stage objects are returned alongside the program and stay alive until
// Shader.Clear deletes them
func CompileAndLink(vertexSrc, fragmentSrc string) (program, vs, ps uint32, err error) {

	vs, err = CompileStage(vertexSrc, ShaderType_Vertex)
	if err != nil {
		return 0, 0, 0, errors.New("failed to compile vertex shader. Err: " + err.Error())
	}

	ps, err = CompileStage(fragmentSrc, ShaderType_Fragment)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, 0, 0, errors.New("failed to compile fragment shader. Err: " + err.Error())
	}

	program = gl.CreateProgram()
	if program == 0 {
		gl.DeleteShader(vs)
		gl.DeleteShader(ps)
		return 0, 0, 0, errors.New("failed to create shader program")
	}

	gl.AttachShader(program, vs)
	gl.AttachShader(program, ps)

	gl.LinkProgram(program)
	if err := getProgramLinkErrors(program); err != nil {

		gl.DeleteShader(vs)
		gl.DeleteShader(ps)
		gl.DeleteProgram(program)
		return 0, 0, 0, err
	}

	return program, vs, ps, nil
}

func getShaderCompileErrors(shaderId uint32) error {

	var compiledSuccessfully int32
	gl.GetShaderiv(shaderId, gl.COMPILE_STATUS, &compiledSuccessfully)
	if compiledSuccessfully == gl.TRUE {
		return nil
	}

	var logLength int32
	gl.GetShaderiv(shaderId, gl.INFO_LOG_LENGTH, &logLength)

	log := gl.Str(strings.Repeat("\x00", int(logLength+1)))
	gl.GetShaderInfoLog(shaderId, logLength, nil, log)

	errMsg := gl.GoStr(log)
	logging.ErrLog.Println("Compilation of shader with id ", shaderId, " failed. Err: ", errMsg)
	return errors.New(errMsg)
}

func getProgramLinkErrors(programId uint32) error {

	var linkedSuccessfully int32
	gl.GetProgramiv(programId, gl.LINK_STATUS, &linkedSuccessfully)
	if linkedSuccessfully == gl.TRUE {
		return nil
	}

	var logLength int32
	gl.GetProgramiv(programId, gl.INFO_LOG_LENGTH, &logLength)

	log := gl.Str(strings.Repeat("\x00", int(logLength+1)))
	gl.GetProgramInfoLog(programId, logLength, nil, log)

	errMsg := gl.GoStr(log)
	logging.ErrLog.Println("Linking of shader program with id ", programId, " failed. Err: ", errMsg)
	return errors.New(errMsg)
}
