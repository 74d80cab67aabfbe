package util

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// VideoInfo 存储视频信息
type VideoInfo struct {
	Duration float64 `json:"duration"` // 视频时长（秒）
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	Size     int64   `json:"size"`
}

// ProbeVideo 使用 ffmpeg-go 获取视频元数据
func ProbeVideo(videoPath string) (*VideoInfo, error) {
	fileInfo, err := os.Stat(videoPath)
	if err != nil {
		return nil, fmt.Errorf("视频文件不存在: %v", err)
	}

	jsonOutput, err := ffmpeg.Probe(videoPath)
	if err != nil {
		return nil, fmt.Errorf("获取视频信息失败: %v", err)
	}

	var result struct {
		Streams []struct {
			CodecType string `json:"codec_type"`
			Width     int    `json:"width"`
			Height    int    `json:"height"`
		} `json:"streams"`
		Format struct {
			Duration string `json:"duration"`
			Size     string `json:"size"`
		} `json:"format"`
	}

	if err := json.Unmarshal([]byte(jsonOutput), &result); err != nil {
		return nil, fmt.Errorf("解析视频信息失败: %v", err)
	}

	var width, height int
	for _, stream := range result.Streams {
		if stream.CodecType == "video" {
			width = stream.Width
			height = stream.Height
			break
		}
	}

	duration, err := strconv.ParseFloat(result.Format.Duration, 64)
	if err != nil {
		duration = 0
	}

	size, err := strconv.ParseInt(result.Format.Size, 10, 64)
	if err != nil {
		size = fileInfo.Size()
	}

	return &VideoInfo{
		Duration: duration,
		Width:    width,
		Height:   height,
		Size:     size,
	}, nil
}

// GenerateThumbnail 从视频抓取一帧生成缩略图
func GenerateThumbnail(videoPath, thumbnailPath string, timeOffset string) error {
	if err := os.MkdirAll(filepath.Dir(thumbnailPath), 0755); err != nil {
		return fmt.Errorf("创建缩略图目录失败: %v", err)
	}

	return ffmpeg.Input(videoPath, ffmpeg.KwArgs{
		"ss": timeOffset, // 从视频的哪个时间点抓取帧
	}).
		Output(thumbnailPath, ffmpeg.KwArgs{
			"vframes": "1", // 只抓取一帧
			"q:v":     "2", // 图像质量 (1-31, 越小质量越高)
		}).
		OverWriteOutput().
		Run()
}
