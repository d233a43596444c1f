package controller

import (
	"fmt"
	"lingua_quest_backend/internal/service"
	"lingua_quest_backend/internal/util"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadController 听力录音上传
type UploadController struct {
	StorageService *service.StorageService
}

func NewUploadController(storageService *service.StorageService) *UploadController {
	return &UploadController{StorageService: storageService}
}

// UploadRecording godoc
// @Summary 上传听力录音
// @Description 校验音频类型后存入对象存储,返回可访问URL
// @Tags 上传
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param   file formData file true "录音文件"
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 400 {object} util.Response "文件类型不允许"
// @Router /api/uploads/recordings [post]
func (c *UploadController) UploadRecording(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	allowed := false
	for _, e := range util.AllowedAudioExtensions {
		if e == ext {
			allowed = true
			break
		}
	}
	if !allowed {
		util.BadRequest(ctx, "audio extension not allowed: "+ext)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	mimeType, err := util.ValidateMimeType(file, []string{util.MimeAudio, "video/webm", util.MimeOctetStream})
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if _, err := file.Seek(0, 0); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	filename := fmt.Sprintf("recordings/%d/%s_%s%s",
		claims.UserID, time.Now().Format(util.DateFormat), uuid.NewString(), ext)

	url, err := c.StorageService.Upload(ctx.Request.Context(), filename, file, fileHeader.Size, mimeType)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"url": url, "filename": filename})
}

// UploadAsset godoc
// @Summary 上传听力素材
// @Description 管理员上传听力题音频素材,统一转码为mp3后入库
// @Tags 上传
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param   file formData file true "音频文件"
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 400 {object} util.Response "文件类型不允许"
// @Router /api/uploads/assets [post]
func (c *UploadController) UploadAsset(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	allowed := false
	for _, e := range util.AllowedAudioExtensions {
		if e == ext {
			allowed = true
			break
		}
	}
	if !allowed {
		util.BadRequest(ctx, "audio extension not allowed: "+ext)
		return
	}

	sniff, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	buf := make([]byte, 512)
	n, _ := sniff.Read(buf)
	sniff.Close()
	mimeType := http.DetectContentType(buf[:n])
	if !util.IsAudio(mimeType) && mimeType != util.MimeOctetStream {
		util.BadRequest(ctx, "invalid audio type: "+mimeType)
		return
	}

	tmpPath := filepath.Join(os.TempDir(), uuid.NewString()+ext)
	if err := ctx.SaveUploadedFile(fileHeader, tmpPath); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer os.Remove(tmpPath)

	info, err := util.GetAudioInfo(tmpPath)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	// 统一转码为mp3,保证前端可直接播放
	srcPath := tmpPath
	if ext != ".mp3" {
		mp3Path := strings.TrimSuffix(tmpPath, ext) + ".mp3"
		if err := util.TranscodeToMP3(tmpPath, mp3Path); err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		defer os.Remove(mp3Path)
		srcPath = mp3Path
	}

	filename := fmt.Sprintf("assets/audio/%s_%s.mp3", time.Now().Format(util.DateFormat), uuid.NewString())
	url, err := c.StorageService.UploadFile(ctx.Request.Context(), filename, srcPath, "audio/mpeg")
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"url":      url,
		"filename": filename,
		"duration": info.Duration,
	})
}

// UploadAvatar godoc
// @Summary 上传头像
// @Description 上传玩家头像图片,返回可访问URL
// @Tags 上传
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param   file formData file true "图片文件"
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 400 {object} util.Response "文件类型不允许"
// @Router /api/uploads/avatars [post]
func (c *UploadController) UploadAvatar(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	buf := make([]byte, 512)
	n, _ := file.Read(buf)
	mimeType := http.DetectContentType(buf[:n])
	if !util.IsImage(mimeType) {
		util.BadRequest(ctx, "invalid image type: "+mimeType)
		return
	}
	if _, err := file.Seek(0, 0); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	filename := fmt.Sprintf("avatars/%d/%s%s", claims.UserID, uuid.NewString(), ext)

	url, err := c.StorageService.Upload(ctx.Request.Context(), filename, file, fileHeader.Size, mimeType)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"url": url, "filename": filename})
}
