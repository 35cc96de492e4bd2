// File: handlers/directory.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	directoryService "github.com/phucnvzeud/center-x-sub000/services/directory"
)

// DirectoryHandler exposes the region, branch and school endpoints.
type DirectoryHandler struct {
	Service directoryService.DirectoryService
}

type createRegionRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *DirectoryHandler) CreateRegionHandler(c *gin.Context) {
	var req createRegionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	region, err := h.Service.CreateRegion(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, region)
}

func (h *DirectoryHandler) ListRegionsHandler(c *gin.Context) {
	regions, err := h.Service.ListRegions(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"regions": regions})
}

func (h *DirectoryHandler) DeleteRegionHandler(c *gin.Context) {
	if err := h.Service.DeleteRegion(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Region deleted"})
}

type createBranchRequest struct {
	RegionID string `json:"regionId" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Address  string `json:"address"`
}

func (h *DirectoryHandler) CreateBranchHandler(c *gin.Context) {
	var req createBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	branch, err := h.Service.CreateBranch(c.Request.Context(), req.RegionID, req.Name, req.Address)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, branch)
}

func (h *DirectoryHandler) ListBranchesHandler(c *gin.Context) {
	branches, err := h.Service.ListBranches(c.Request.Context(), c.Query("regionId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"branches": branches})
}

func (h *DirectoryHandler) DeleteBranchHandler(c *gin.Context) {
	if err := h.Service.DeleteBranch(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Branch deleted"})
}

type createSchoolRequest struct {
	RegionID string `json:"regionId" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
}

func (h *DirectoryHandler) CreateSchoolHandler(c *gin.Context) {
	var req createSchoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	school, err := h.Service.CreateSchool(c.Request.Context(), req.RegionID, req.Name, req.Address, req.Phone)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, school)
}

func (h *DirectoryHandler) ListSchoolsHandler(c *gin.Context) {
	schools, err := h.Service.ListSchools(c.Request.Context(), c.Query("regionId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schools": schools})
}

func (h *DirectoryHandler) DeleteSchoolHandler(c *gin.Context) {
	if err := h.Service.DeleteSchool(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "School deleted"})
}
